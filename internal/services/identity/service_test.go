package identity_test

import (
	"errors"
	"testing"

	"cachet/internal/services/identity"
	"cachet/internal/store"
)

const goodPassphrase = "Correct-Horse-42!"

func TestGenerateAndLoad(t *testing.T) {
	svc := identity.New(store.NewKeyring(t.TempDir()))

	id, fp, err := svc.Generate(goodPassphrase)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if fp == "" {
		t.Fatal("empty fingerprint")
	}

	loaded, err := svc.Load(goodPassphrase)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != id {
		t.Fatal("loaded identity differs from generated")
	}

	fp2, err := svc.Fingerprint(goodPassphrase)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if fp2 != fp {
		t.Fatalf("fingerprint mismatch: %s != %s", fp2, fp)
	}
}

func TestWeakPassphraseRejected(t *testing.T) {
	svc := identity.New(store.NewKeyring(t.TempDir()))

	for _, p := range []string{
		"",
		"short1!A",
		"nouppercase-42!",
		"NOLOWERCASE-42!",
		"NoDigitsHere!!",
		"NoSymbolsHere42",
	} {
		if _, _, err := svc.Generate(p); !errors.Is(err, identity.ErrWeakPassphrase) {
			t.Fatalf("passphrase %q: want ErrWeakPassphrase, got %v", p, err)
		}
	}
}
