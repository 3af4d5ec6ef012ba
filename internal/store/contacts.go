package store

import (
	"path/filepath"
	"sort"
	"sync"

	"cachet/internal/domain"
)

const contactsFile = "contacts.json"

// ContactBook keeps named peer public keys in a JSON file.
type ContactBook struct {
	dir string
	mu  sync.Mutex
}

// NewContactBook returns a contact book rooted at dir.
func NewContactBook(dir string) *ContactBook { return &ContactBook{dir: dir} }

// SaveContact records or replaces the key stored under name.
func (s *ContactBook) SaveContact(name string, key domain.X25519Public) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.X25519Public)
	if err := readJSON(filepath.Join(s.dir, contactsFile), &m); err != nil {
		return err
	}
	m[name] = key
	return writeJSON(filepath.Join(s.dir, contactsFile), m, 0o600)
}

// LookupContact returns the key stored under name, if any.
func (s *ContactBook) LookupContact(name string) (domain.X25519Public, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.X25519Public)
	if err := readJSON(filepath.Join(s.dir, contactsFile), &m); err != nil {
		return domain.X25519Public{}, false, err
	}
	key, ok := m[name]
	return key, ok, nil
}

// ListContacts returns all contacts sorted by name.
func (s *ContactBook) ListContacts() ([]domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.X25519Public)
	if err := readJSON(filepath.Join(s.dir, contactsFile), &m); err != nil {
		return nil, err
	}
	out := make([]domain.Contact, 0, len(m))
	for name, key := range m {
		out = append(out, domain.Contact{Name: name, Key: key})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var _ domain.ContactStore = (*ContactBook)(nil)
