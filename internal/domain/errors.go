package domain

import "errors"

// Error taxonomy for the codec core. Failure sites wrap these with %w so
// callers can branch with errors.Is; nothing is recovered locally.
var (
	// ErrRandomness indicates the platform CSPRNG failed. There is no
	// fallback: weaker randomness is never substituted.
	ErrRandomness = errors.New("secure randomness unavailable")

	// ErrKeyFormat indicates a key or IV has the wrong length for the
	// chosen algorithm. Raised before any bytes are processed.
	ErrKeyFormat = errors.New("key or IV has wrong format")

	// ErrDecrypt indicates an integrity-check failure (wrong key pair or
	// tampered ciphertext) or a malformed wire format. It is never
	// converted into plausible-looking plaintext.
	ErrDecrypt = errors.New("decryption failed")

	// ErrSerialization indicates a payload did not encode to, or decode
	// from, its canonical JSON form.
	ErrSerialization = errors.New("payload serialization failed")
)
