package content

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"cachet/internal/domain"
)

// Transform applies one direction of a content cipher to a complete buffer,
// finalizing any internal block padding. Implementations are bound to an
// algorithm, key and IV at construction time.
type Transform interface {
	Apply(src []byte) ([]byte, error)
}

// Sealer returns the forward (encrypt) transform for k. Key material with
// the wrong sizes fails here, before any bytes are processed.
func (k Key) Sealer() (Transform, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	switch k.Algorithm {
	case None:
		return passthrough{}, nil
	case AES256CBC:
		block, err := aes.NewCipher(k.Material)
		if err != nil {
			return nil, fmt.Errorf("content: %v: %w", err, domain.ErrKeyFormat)
		}
		return &cbcSealer{block: block, iv: k.IV}, nil
	}
	return nil, fmt.Errorf("content: unknown algorithm %d: %w", k.Algorithm, domain.ErrKeyFormat)
}

// Opener returns the inverse (decrypt) transform for k.
func (k Key) Opener() (Transform, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	switch k.Algorithm {
	case None:
		return passthrough{}, nil
	case AES256CBC:
		block, err := aes.NewCipher(k.Material)
		if err != nil {
			return nil, fmt.Errorf("content: %v: %w", err, domain.ErrKeyFormat)
		}
		return &cbcOpener{block: block, iv: k.IV}, nil
	}
	return nil, fmt.Errorf("content: unknown algorithm %d: %w", k.Algorithm, domain.ErrKeyFormat)
}

// passthrough is the identity transform used by the None algorithm.
type passthrough struct{}

func (passthrough) Apply(src []byte) ([]byte, error) { return src, nil }

type cbcSealer struct {
	block cipher.Block
	iv    []byte
}

func (t *cbcSealer) Apply(src []byte) ([]byte, error) {
	padded := pkcs7Pad(src, t.block.BlockSize())
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(t.block, t.iv).CryptBlocks(out, padded)
	return out, nil
}

type cbcOpener struct {
	block cipher.Block
	iv    []byte
}

func (t *cbcOpener) Apply(src []byte) ([]byte, error) {
	bs := t.block.BlockSize()
	if len(src) == 0 || len(src)%bs != 0 {
		return nil, fmt.Errorf("content: ciphertext length %d is not a multiple of %d: %w", len(src), bs, domain.ErrDecrypt)
	}
	out := make([]byte, len(src))
	cipher.NewCBCDecrypter(t.block, t.iv).CryptBlocks(out, src)
	return pkcs7Unpad(out, bs)
}

func pkcs7Pad(src []byte, bs int) []byte {
	pad := bs - len(src)%bs
	out := make([]byte, len(src)+pad)
	copy(out, src)
	for i := len(src); i < len(out); i++ {
		out[i] = byte(pad)
	}
	return out
}

func pkcs7Unpad(src []byte, bs int) ([]byte, error) {
	pad := int(src[len(src)-1])
	if pad == 0 || pad > bs || pad > len(src) {
		return nil, fmt.Errorf("content: bad padding: %w", domain.ErrDecrypt)
	}
	for _, b := range src[len(src)-pad:] {
		if int(b) != pad {
			return nil, fmt.Errorf("content: bad padding: %w", domain.ErrDecrypt)
		}
	}
	return src[:len(src)-pad], nil
}
