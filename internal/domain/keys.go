package domain

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private key.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// FingerprintLen is the length of a well-formed fingerprint in characters.
const FingerprintLen = 20

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Valid reports whether f is exactly FingerprintLen lowercase hex characters.
// Fingerprints travel in URLs and file names, so anything else is rejected.
func (f Fingerprint) Valid() bool {
	if len(f) != FingerprintLen {
		return false
	}
	for i := 0; i < len(f); i++ {
		c := f[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Identity holds the long-term key pair stored locally.
type Identity struct {
	Public  X25519Public
	Private X25519Private
}
