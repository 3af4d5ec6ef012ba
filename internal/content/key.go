package content

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"cachet/internal/crypto"
	"cachet/internal/domain"
)

// Key describes how one piece of content is symmetrically protected:
// an algorithm plus key material sized for it. Keys are immutable once
// created and never reused across unrelated content.
type Key struct {
	Algorithm Algorithm
	Material  []byte // symmetric key, nil for None
	IV        []byte // initialization vector, nil for None
}

// NewKey generates a fresh random key and IV for algo. Passthrough must be
// requested explicitly via NewPlaintextKey, so None is rejected here.
func NewKey(algo Algorithm) (Key, error) {
	switch algo {
	case AES256CBC:
		material, err := crypto.RandomBytes(algo.KeySize())
		if err != nil {
			return Key{}, err
		}
		iv, err := crypto.RandomBytes(algo.IVSize())
		if err != nil {
			return Key{}, err
		}
		return Key{Algorithm: algo, Material: material, IV: iv}, nil
	case None:
		return Key{}, fmt.Errorf("content: passthrough requires NewPlaintextKey: %w", domain.ErrKeyFormat)
	}
	return Key{}, fmt.Errorf("content: unknown algorithm %d: %w", algo, domain.ErrKeyFormat)
}

// NewPlaintextKey returns the explicit no-encryption key. Content flows
// through the pipeline unmodified.
func NewPlaintextKey() Key {
	return Key{Algorithm: None}
}

// validate checks key material sizes against the algorithm's requirements.
func (k Key) validate() error {
	if k.Algorithm == None {
		if len(k.Material) != 0 || len(k.IV) != 0 {
			return fmt.Errorf("content: passthrough key carries material: %w", domain.ErrKeyFormat)
		}
		return nil
	}
	if len(k.Material) != k.Algorithm.KeySize() {
		return fmt.Errorf("content: %s key is %d bytes, want %d: %w",
			k.Algorithm, len(k.Material), k.Algorithm.KeySize(), domain.ErrKeyFormat)
	}
	if len(k.IV) != k.Algorithm.IVSize() {
		return fmt.Errorf("content: %s IV is %d bytes, want %d: %w",
			k.Algorithm, len(k.IV), k.Algorithm.IVSize(), domain.ErrKeyFormat)
	}
	return nil
}

// keyJSON is the serializable form: algo name plus hex key material,
// with key and iv absent for the passthrough sentinel.
type keyJSON struct {
	Algo string `json:"algo"`
	Key  string `json:"key,omitempty"`
	IV   string `json:"iv,omitempty"`
}

// MarshalJSON encodes the canonical {algo, key, iv} form.
func (k Key) MarshalJSON() ([]byte, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	out := keyJSON{Algo: k.Algorithm.String()}
	if k.Algorithm != None {
		out.Key = hex.EncodeToString(k.Material)
		out.IV = hex.EncodeToString(k.IV)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes and validates the canonical form; wrong hex or
// wrong sizes fail with domain.ErrKeyFormat.
func (k *Key) UnmarshalJSON(data []byte) error {
	var in keyJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSerialization, err)
	}
	algo, err := ParseAlgorithm(in.Algo)
	if err != nil {
		return err
	}
	parsed := Key{Algorithm: algo}
	if in.Key != "" {
		if parsed.Material, err = hex.DecodeString(in.Key); err != nil {
			return fmt.Errorf("content: key is not hex: %w", domain.ErrKeyFormat)
		}
	}
	if in.IV != "" {
		if parsed.IV, err = hex.DecodeString(in.IV); err != nil {
			return fmt.Errorf("content: iv is not hex: %w", domain.ErrKeyFormat)
		}
	}
	if err := parsed.validate(); err != nil {
		return err
	}
	*k = parsed
	return nil
}
