// Package crypto exposes the minimal primitives used by cachet.
//
// Contents
//
//   - X25519 key generation, clamping and Diffie–Hellman (GenerateX25519, DH)
//   - Secure random bytes from the platform CSPRNG (RandomBytes)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - Base64 helpers for wire text (B64, B64Dec)
//
// # Notes
//
// All functions return fixed-size array types defined in internal/domain to
// avoid accidental reallocations. Callers should treat returned secrets as
// sensitive and rely on memzero.Zero when practical to reduce lifetime in
// memory.
package crypto
