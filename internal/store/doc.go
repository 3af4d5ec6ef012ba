// Package store provides file-based persistence for cachet's local state.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Stored files live under the user's configured home
// directory.
//
// The package includes stores for:
//   - The identity keyring, sealed under a passphrase (Keyring)
//   - Named peer public keys (ContactBook)
package store
