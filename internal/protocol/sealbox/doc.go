// Package sealbox implements the keyed encryption primitive the envelope
// codec is built on: an X25519 shared secret mixed with a caller-supplied
// public nonce, producing an integrity-checked ciphertext.
//
// # Construction
//
//  1. shared = X25519(own private, peer public)
//  2. HKDF-SHA256(shared, salt=nonce, info="cachet-sealbox-v1") yields the
//     ChaCha20-Poly1305 key followed by the AEAD nonce.
//  3. Seal/Open with the nonce as associated data; the Poly1305 tag is the
//     embedded integrity check.
//
// Because the AEAD key and nonce are both derived from the caller nonce,
// nonce freshness per call is mandatory: reusing a nonce under the same key
// pair reuses the AEAD (key, nonce) pair. Callers in internal/envelope
// generate a fresh random nonce on every seal.
//
// # Errors
//
// Open fails with domain.ErrDecrypt when the derived key is wrong (key pair
// mismatch) or the ciphertext was altered. Both parties compute the same
// shared secret, so the roles of the two keys swap between Seal and Open.
package sealbox
