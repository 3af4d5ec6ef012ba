// Package identity manages the local long-term key pair: generation under a
// passphrase-strength policy, loading, and fingerprint display.
package identity
