// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores, services and drop client from Config,
// exposing them via the Wire struct for commands to use.
package app
