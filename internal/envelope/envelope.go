package envelope

import (
	"encoding/json"
	"fmt"

	"cachet/internal/crypto"
	"cachet/internal/domain"
	"cachet/internal/protocol/sealbox"
)

// NonceSize is the number of random bytes generated per encryption.
const NonceSize = 32

// Envelope is the (nonce, ciphertext) pair both wire formats serialize.
type Envelope struct {
	Nonce      []byte
	Ciphertext []byte
}

// EncryptObject seals obj's canonical JSON form for peer and returns the
// text-format envelope. The nonce is freshly random on every call.
func EncryptObject(obj any, own domain.X25519Private, peer domain.X25519Public) (string, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSerialization, err)
	}
	env, err := seal(raw, own, peer)
	if err != nil {
		return "", err
	}
	return EncodeText(env), nil
}

// DecryptObject opens a text-format envelope from peer and decodes the
// plaintext JSON into out.
func DecryptObject(s string, peer domain.X25519Public, own domain.X25519Private, out any) error {
	env, err := DecodeText(s)
	if err != nil {
		return err
	}
	raw, err := sealbox.Open(own, peer, env.Nonce, env.Ciphertext)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSerialization, err)
	}
	return nil
}

// EncryptBuffer seals raw bytes for peer and returns the binary-format
// envelope.
func EncryptBuffer(buf []byte, own domain.X25519Private, peer domain.X25519Public) ([]byte, error) {
	env, err := seal(buf, own, peer)
	if err != nil {
		return nil, err
	}
	return EncodeBinary(env)
}

// DecryptBuffer opens a binary-format envelope from peer.
func DecryptBuffer(buf []byte, peer domain.X25519Public, own domain.X25519Private) ([]byte, error) {
	env, err := DecodeBinary(buf)
	if err != nil {
		return nil, err
	}
	return sealbox.Open(own, peer, env.Nonce, env.Ciphertext)
}

func seal(plaintext []byte, own domain.X25519Private, peer domain.X25519Public) (Envelope, error) {
	nonce, err := crypto.RandomBytes(NonceSize)
	if err != nil {
		return Envelope{}, err
	}
	ct, err := sealbox.Seal(own, peer, nonce, plaintext)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Nonce: nonce, Ciphertext: ct}, nil
}
