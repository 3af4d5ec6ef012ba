package share_test

import (
	"bytes"
	"errors"
	"testing"

	"cachet/internal/content"
	"cachet/internal/crypto"
	"cachet/internal/domain"
	"cachet/internal/services/share"
)

func makeIdentity(t *testing.T) domain.Identity {
	t.Helper()
	priv, pub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	return domain.Identity{Public: pub, Private: priv}
}

func TestSealOpenRoundTrip(t *testing.T) {
	svc := share.New(content.DefaultAlgorithm)
	sender := makeIdentity(t)
	recipient := makeIdentity(t)
	plaintext := []byte("the quick brown fox, sealed end to end")

	p, err := svc.Seal(plaintext, sender, recipient.Public)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Contains(p.Content, plaintext) {
		t.Fatal("parcel content contains plaintext")
	}
	if p.From != domain.Fingerprint(crypto.Fingerprint(sender.Public.Slice())) {
		t.Fatalf("wrong From fingerprint: %s", p.From)
	}
	if p.To != domain.Fingerprint(crypto.Fingerprint(recipient.Public.Slice())) {
		t.Fatalf("wrong To fingerprint: %s", p.To)
	}
	if p.SenderKey != sender.Public {
		t.Fatal("parcel carries wrong sender key")
	}

	out, err := svc.Open(p, recipient)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(out, plaintext) {
		t.Fatal("round trip mismatch")
	}
}

func TestOpenWrongRecipient(t *testing.T) {
	svc := share.New(content.DefaultAlgorithm)
	sender := makeIdentity(t)
	recipient := makeIdentity(t)
	bystander := makeIdentity(t)

	p, err := svc.Seal([]byte("not for you"), sender, recipient.Public)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := svc.Open(p, bystander); !errors.Is(err, domain.ErrDecrypt) {
		t.Fatalf("want ErrDecrypt for wrong recipient, got %v", err)
	}
}

func TestParcelKeysAreFresh(t *testing.T) {
	svc := share.New(content.DefaultAlgorithm)
	sender := makeIdentity(t)
	recipient := makeIdentity(t)
	plaintext := []byte("same content twice")

	a, err := svc.Seal(plaintext, sender, recipient.Public)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	b, err := svc.Seal(plaintext, sender, recipient.Public)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Equal(a.Content, b.Content) {
		t.Fatal("two seals of the same content produced identical ciphertext")
	}
	if bytes.Equal(a.WrappedKey, b.WrappedKey) {
		t.Fatal("two seals produced identical wrapped keys")
	}
}

func TestEmptyContentRoundTrip(t *testing.T) {
	svc := share.New(content.DefaultAlgorithm)
	sender := makeIdentity(t)
	recipient := makeIdentity(t)

	p, err := svc.Seal(nil, sender, recipient.Public)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	out, err := svc.Open(p, recipient)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("want empty content, got %d bytes", len(out))
	}
}
