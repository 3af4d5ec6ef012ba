package envelope

import (
	"fmt"
	"strings"

	"cachet/internal/crypto"
	"cachet/internal/domain"
)

const textSeparator = ":"

// EncodeText renders the delimited text form, base64(nonce):base64(ciphertext).
func EncodeText(e Envelope) string {
	return crypto.B64(e.Nonce) + textSeparator + crypto.B64(e.Ciphertext)
}

// DecodeText parses the text form, splitting on the first separator only.
// Empty segments and invalid base64 fail with domain.ErrDecrypt.
func DecodeText(s string) (Envelope, error) {
	noncePart, ctPart, found := strings.Cut(s, textSeparator)
	if !found || noncePart == "" || ctPart == "" {
		return Envelope{}, fmt.Errorf("envelope: malformed text envelope: %w", domain.ErrDecrypt)
	}
	nonce, err := crypto.B64Dec(noncePart)
	if err != nil {
		return Envelope{}, fmt.Errorf("envelope: bad nonce base64: %w", domain.ErrDecrypt)
	}
	ct, err := crypto.B64Dec(ctPart)
	if err != nil {
		return Envelope{}, fmt.Errorf("envelope: bad ciphertext base64: %w", domain.ErrDecrypt)
	}
	return Envelope{Nonce: nonce, Ciphertext: ct}, nil
}
