package content

import (
	"fmt"

	"cachet/internal/domain"
)

// Algorithm names a symmetric cipher construction from a closed set.
type Algorithm uint8

const (
	// None is the passthrough sentinel. It is only reachable through
	// NewPlaintextKey; NewKey rejects it.
	None Algorithm = iota

	// AES256CBC is AES with a 256-bit key and 128-bit IV in CBC mode,
	// PKCS#7 padded.
	AES256CBC
)

// DefaultAlgorithm is what callers pass when they have no reason to choose.
const DefaultAlgorithm = AES256CBC

const (
	algoNameNone      = "none"
	algoNameAES256CBC = "aes-256-cbc"
)

// String returns the serialized algorithm identifier.
func (a Algorithm) String() string {
	switch a {
	case None:
		return algoNameNone
	case AES256CBC:
		return algoNameAES256CBC
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps a serialized identifier back to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case algoNameNone:
		return None, nil
	case algoNameAES256CBC:
		return AES256CBC, nil
	}
	return None, fmt.Errorf("content: unknown algorithm %q: %w", s, domain.ErrKeyFormat)
}

// KeySize returns the key length in bytes, zero for None.
func (a Algorithm) KeySize() int {
	if a == AES256CBC {
		return 32
	}
	return 0
}

// IVSize returns the IV length in bytes, zero for None.
func (a Algorithm) IVSize() int {
	if a == AES256CBC {
		return 16
	}
	return 0
}
