// Package commands defines the cachet CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init           Create the local identity
//   - fingerprint    Print the identity fingerprint and public key
//   - contact        Manage named peer public keys
//   - seal           Encrypt a file for a peer into a parcel file
//   - open           Decrypt a parcel file addressed to us
//   - send           Seal a file and post the parcel to a drop server
//   - recv           Fetch, open and acknowledge queued parcels
//
// # Implementation
//
// The root command builds a dependency graph (stores, services, drop client)
// before any subcommand runs, so handlers share one app context.
package commands
