package sealbox

import (
	"crypto/cipher"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"cachet/internal/crypto"
	"cachet/internal/domain"
	"cachet/internal/util/memzero"
)

const hkdfInfo = "cachet-sealbox-v1"

var errEmptyNonce = errors.New("sealbox: nonce must not be empty")

// Seal encrypts plaintext from own to peer under the given public nonce.
// Every call is a pure function of its inputs; the nonce must be fresh.
func Seal(own domain.X25519Private, peer domain.X25519Public, nonce, plaintext []byte) ([]byte, error) {
	if len(nonce) == 0 {
		return nil, errEmptyNonce
	}
	aead, aeadNonce, err := derive(own, peer, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, aeadNonce, plaintext, nonce), nil
}

// Open decrypts ciphertext sealed by the peer under the same nonce.
// A wrong key pair or altered ciphertext fails with domain.ErrDecrypt.
func Open(own domain.X25519Private, peer domain.X25519Public, nonce, ciphertext []byte) ([]byte, error) {
	if len(nonce) == 0 {
		return nil, fmt.Errorf("sealbox: empty nonce: %w", domain.ErrDecrypt)
	}
	aead, aeadNonce, err := derive(own, peer, nonce)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, aeadNonce, ciphertext, nonce)
	if err != nil {
		return nil, fmt.Errorf("sealbox: %w", domain.ErrDecrypt)
	}
	return pt, nil
}

// derive runs the shared secret through HKDF and builds the AEAD.
func derive(own domain.X25519Private, peer domain.X25519Public, nonce []byte) (cipher.AEAD, []byte, error) {
	shared, err := crypto.DH(own, peer)
	if err != nil {
		return nil, nil, err
	}
	r := hkdf.New(sha256.New, shared[:], nonce, []byte(hkdfInfo))
	memzero.Zero(shared[:])

	key := make([]byte, chacha20poly1305.KeySize)
	aeadNonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(r, aeadNonce); err != nil {
		return nil, nil, err
	}

	a, err := chacha20poly1305.New(key)
	memzero.Zero(key)
	if err != nil {
		return nil, nil, err
	}
	return a, aeadNonce, nil
}
