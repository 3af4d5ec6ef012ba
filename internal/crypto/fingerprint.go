package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

const fingerprintBytes = 10

// Fingerprint derives the short identifier shown to users for a public key:
// the first fingerprintBytes of the key's SHA-256 digest, hex encoded. The
// result is always domain.FingerprintLen characters of lowercase hex.
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:fingerprintBytes])
}
