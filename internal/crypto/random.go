package crypto

import (
	"crypto/rand"
	"fmt"

	"cachet/internal/domain"
)

// RandomBytes returns n bytes from the platform CSPRNG.
// A read failure surfaces as domain.ErrRandomness; there is no fallback.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRandomness, err)
	}
	return b, nil
}
