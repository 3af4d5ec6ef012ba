package content

import (
	"fmt"

	"cachet/internal/crypto"
	"cachet/internal/domain"
)

// Encrypt applies k's forward transform to a whole buffer.
func Encrypt(buf []byte, k Key) ([]byte, error) {
	t, err := k.Sealer()
	if err != nil {
		return nil, err
	}
	return t.Apply(buf)
}

// Decrypt applies k's inverse transform to a whole buffer.
func Decrypt(buf []byte, k Key) ([]byte, error) {
	t, err := k.Opener()
	if err != nil {
		return nil, err
	}
	return t.Apply(buf)
}

// EncryptString encrypts text and returns base64 for text-oriented channels.
func EncryptString(s string, k Key) (string, error) {
	ct, err := Encrypt([]byte(s), k)
	if err != nil {
		return "", err
	}
	return crypto.B64(ct), nil
}

// DecryptString reverses EncryptString.
func DecryptString(s string, k Key) (string, error) {
	raw, err := crypto.B64Dec(s)
	if err != nil {
		return "", fmt.Errorf("content: bad base64: %w", domain.ErrDecrypt)
	}
	pt, err := Decrypt(raw, k)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}
