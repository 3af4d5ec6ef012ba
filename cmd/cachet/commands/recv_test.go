package commands

import (
	"path/filepath"
	"strings"
	"testing"

	"cachet/internal/crypto"
	"cachet/internal/domain"
)

func TestParcelFileNameIgnoresSenderClaim(t *testing.T) {
	_, pub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	p := domain.Parcel{
		From:      "../../../../tmp/pwn",
		SenderKey: pub,
		Timestamp: 42,
	}

	name := parcelFileName(p)
	want := "parcel-" + crypto.Fingerprint(pub.Slice()) + "-42"
	if name != want {
		t.Fatalf("want %q, got %q", want, name)
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		t.Fatalf("file name %q contains path elements", name)
	}
	if got := filepath.Dir(filepath.Join("downloads", name)); got != "downloads" {
		t.Fatalf("file name escapes its directory: %q resolves under %q", name, got)
	}
}
