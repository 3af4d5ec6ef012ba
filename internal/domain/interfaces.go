package domain

import "context"

// KeyringStore persists the long-term identity under a passphrase.
type KeyringStore interface {
	SaveIdentity(passphrase string, id Identity) error
	LoadIdentity(passphrase string) (Identity, error)
}

// ContactStore keeps named peer public keys on disk.
type ContactStore interface {
	SaveContact(name string, key X25519Public) error
	LookupContact(name string) (X25519Public, bool, error)
	ListContacts() ([]Contact, error)
}

// IdentityService creates and retrieves the local identity.
type IdentityService interface {
	Generate(passphrase string) (Identity, Fingerprint, error)
	Load(passphrase string) (Identity, error)
	Fingerprint(passphrase string) (Fingerprint, error)
}

// ShareService seals content for a peer and opens parcels addressed to us.
type ShareService interface {
	Seal(plaintext []byte, own Identity, peer X25519Public) (Parcel, error)
	Open(p Parcel, own Identity) ([]byte, error)
}

// DropClient is how we talk to a drop server.
type DropClient interface {
	Post(ctx context.Context, p Parcel) error
	Fetch(ctx context.Context, to Fingerprint, limit int) ([]Parcel, error)
	Ack(ctx context.Context, to Fingerprint, count int) error
}
