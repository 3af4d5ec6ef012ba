// Package envelope encrypts objects and buffers for a specific counterparty,
// identified by X25519 public key, on top of the sealbox primitive.
//
// Both operations share one internal value, Envelope{Nonce, Ciphertext},
// serialized by two independent codecs:
//
//   - Text:   base64(nonce) + ":" + base64(ciphertext). Used for small
//     structured objects that travel through text-oriented channels; the
//     delimiter is unambiguous because base64 never emits ':'.
//   - Binary: u8(len(nonce)) || nonce || ciphertext. Used for compact binary
//     secrets such as wrapped content keys; the explicit length prefix avoids
//     any delimiter ambiguity inside raw ciphertext.
//
// A fresh 32-byte random nonce is generated on every encrypt call. Malformed
// framing, invalid base64 and integrity failures all surface as
// domain.ErrDecrypt; a decrypted payload that does not parse as JSON surfaces
// as domain.ErrSerialization.
package envelope
