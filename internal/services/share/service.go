package share

import (
	"encoding/json"
	"fmt"
	"time"

	"cachet/internal/content"
	"cachet/internal/crypto"
	"cachet/internal/domain"
	"cachet/internal/envelope"
)

// Service seals content for peers under fresh content keys.
type Service struct {
	algo content.Algorithm
}

// New returns a share service that seals content with algo.
func New(algo content.Algorithm) *Service { return &Service{algo: algo} }

// Seal encrypts plaintext under a fresh content key and wraps that key for
// peer. Every parcel gets its own key and IV; nothing is reused.
func (s *Service) Seal(plaintext []byte, own domain.Identity, peer domain.X25519Public) (domain.Parcel, error) {
	key, err := content.NewKey(s.algo)
	if err != nil {
		return domain.Parcel{}, err
	}
	sealed, err := content.Encrypt(plaintext, key)
	if err != nil {
		return domain.Parcel{}, err
	}
	rawKey, err := json.Marshal(key)
	if err != nil {
		return domain.Parcel{}, fmt.Errorf("%w: %v", domain.ErrSerialization, err)
	}
	wrapped, err := envelope.EncryptBuffer(rawKey, own.Private, peer)
	if err != nil {
		return domain.Parcel{}, err
	}
	return domain.Parcel{
		From:       domain.Fingerprint(crypto.Fingerprint(own.Public.Slice())),
		To:         domain.Fingerprint(crypto.Fingerprint(peer.Slice())),
		SenderKey:  own.Public,
		WrappedKey: wrapped,
		Content:    sealed,
		Timestamp:  time.Now().Unix(),
	}, nil
}

// Open unwraps the parcel's content key with our private key and decrypts
// the content. A parcel addressed to someone else fails with ErrDecrypt.
func (s *Service) Open(p domain.Parcel, own domain.Identity) ([]byte, error) {
	rawKey, err := envelope.DecryptBuffer(p.WrappedKey, p.SenderKey, own.Private)
	if err != nil {
		return nil, err
	}
	var key content.Key
	if err := json.Unmarshal(rawKey, &key); err != nil {
		return nil, err
	}
	return content.Decrypt(p.Content, key)
}

var _ domain.ShareService = (*Service)(nil)
