package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"cachet/internal/domain"
)

const keyringFile = "identity.enc"

// Keyring stores the long-term identity on disk, sealed under a passphrase.
type Keyring struct {
	dir string
	mu  sync.Mutex
}

// NewKeyring returns a keyring rooted at dir.
func NewKeyring(dir string) *Keyring { return &Keyring{dir: dir} }

// SaveIdentity seals id under the passphrase and writes it atomically.
func (s *Keyring) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	b, err := sealBlob(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, keyringFile), b, 0o600)
}

// LoadIdentity decrypts and returns the stored identity.
func (s *Keyring) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, keyringFile))
	if err != nil {
		return domain.Identity{}, err
	}
	raw, err := openBlob(passphrase, b)
	if err != nil {
		return domain.Identity{}, err
	}
	var id domain.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

var _ domain.KeyringStore = (*Keyring)(nil)
