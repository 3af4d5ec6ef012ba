package app

import (
	"cachet/internal/content"
	"cachet/internal/domain"
	"cachet/internal/drop"
	identitysvc "cachet/internal/services/identity"
	sharesvc "cachet/internal/services/share"
	"cachet/internal/store"
)

// Wire bundles all stores, services and clients for the CLI.
type Wire struct {
	Keyring  domain.KeyringStore
	Contacts domain.ContactStore
	Identity domain.IdentityService
	Share    domain.ShareService
	Drop     domain.DropClient // nil when no drop server is configured
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	keyring := store.NewKeyring(cfg.Home)
	contacts := store.NewContactBook(cfg.Home)

	var dc domain.DropClient
	if cfg.DropURL != "" {
		dc = drop.NewClient(cfg.DropURL, cfg.HTTP)
	}

	return &Wire{
		Keyring:  keyring,
		Contacts: contacts,
		Identity: identitysvc.New(keyring),
		Share:    sharesvc.New(content.DefaultAlgorithm),
		Drop:     dc,
	}
}
