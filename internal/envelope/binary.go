package envelope

import (
	"errors"
	"fmt"

	"cachet/internal/domain"
)

// maxBinaryNonce is the largest nonce the single length byte can record.
const maxBinaryNonce = 255

var errNonceTooLong = errors.New("envelope: nonce exceeds 255 bytes")

// EncodeBinary renders the length-prefixed binary form,
// u8(len(nonce)) || nonce || ciphertext.
func EncodeBinary(e Envelope) ([]byte, error) {
	if len(e.Nonce) == 0 {
		return nil, errors.New("envelope: nonce must not be empty")
	}
	if len(e.Nonce) > maxBinaryNonce {
		return nil, errNonceTooLong
	}
	out := make([]byte, 0, 1+len(e.Nonce)+len(e.Ciphertext))
	out = append(out, byte(len(e.Nonce)))
	out = append(out, e.Nonce...)
	out = append(out, e.Ciphertext...)
	return out, nil
}

// DecodeBinary parses the binary form, reading the explicit nonce length
// byte. Truncated or zero-nonce input fails with domain.ErrDecrypt.
func DecodeBinary(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("envelope: empty binary envelope: %w", domain.ErrDecrypt)
	}
	n := int(b[0])
	if n == 0 || len(b) < 1+n {
		return Envelope{}, fmt.Errorf("envelope: bad nonce length %d for %d bytes: %w", n, len(b), domain.ErrDecrypt)
	}
	nonce := append([]byte(nil), b[1:1+n]...)
	ct := append([]byte(nil), b[1+n:]...)
	return Envelope{Nonce: nonce, Ciphertext: ct}, nil
}
