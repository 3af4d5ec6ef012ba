// Package main runs the in-memory HTTP drop server used by cachet.
// It queues sealed parcels for recipients until they fetch and acknowledge
// them; see internal/drop for the HTTP API.
//
// Configuration is a small YAML file (--config):
//
//	listen: ":8080"
//	max_queue: 1024
//
// Both fields are optional and default to the values above. The server is
// intended for local use or as an untrusted middleman on a private network.
// It never sees plaintext or private keys; it only stores ciphertext and
// public keys.
package main
