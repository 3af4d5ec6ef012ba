package envelope_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"cachet/internal/crypto"
	"cachet/internal/domain"
	"cachet/internal/envelope"
)

type memo struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Seq     int    `json:"seq"`
}

func makeIdentity(t *testing.T) domain.Identity {
	t.Helper()
	priv, pub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	return domain.Identity{Public: pub, Private: priv}
}

func TestObjectRoundTrip(t *testing.T) {
	sender := makeIdentity(t)
	recipient := makeIdentity(t)
	in := memo{Subject: "catalogue", Body: "see attached index", Seq: 7}

	wire, err := envelope.EncryptObject(in, sender.Private, recipient.Public)
	if err != nil {
		t.Fatalf("EncryptObject: %v", err)
	}

	var out memo
	if err := envelope.DecryptObject(wire, sender.Public, recipient.Private, &out); err != nil {
		t.Fatalf("DecryptObject: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestObjectWireShape(t *testing.T) {
	sender := makeIdentity(t)
	recipient := makeIdentity(t)

	wire, err := envelope.EncryptObject(memo{Subject: "s"}, sender.Private, recipient.Public)
	if err != nil {
		t.Fatalf("EncryptObject: %v", err)
	}
	noncePart, ctPart, found := strings.Cut(wire, ":")
	if !found || noncePart == "" || ctPart == "" {
		t.Fatalf("want nonce:ciphertext, got %q", wire)
	}
	nonce, err := crypto.B64Dec(noncePart)
	if err != nil {
		t.Fatalf("nonce segment is not base64: %v", err)
	}
	if len(nonce) != envelope.NonceSize {
		t.Fatalf("want %d-byte nonce, got %d", envelope.NonceSize, len(nonce))
	}
	if _, err := crypto.B64Dec(ctPart); err != nil {
		t.Fatalf("ciphertext segment is not base64: %v", err)
	}
}

func TestNonceFreshPerCall(t *testing.T) {
	sender := makeIdentity(t)
	recipient := makeIdentity(t)
	in := memo{Subject: "same args twice"}

	a, err := envelope.EncryptObject(in, sender.Private, recipient.Public)
	if err != nil {
		t.Fatalf("EncryptObject: %v", err)
	}
	b, err := envelope.EncryptObject(in, sender.Private, recipient.Public)
	if err != nil {
		t.Fatalf("EncryptObject: %v", err)
	}
	if a == b {
		t.Fatal("two encryptions of identical input produced identical envelopes")
	}
	nonceA, _, _ := strings.Cut(a, ":")
	nonceB, _, _ := strings.Cut(b, ":")
	if nonceA == nonceB {
		t.Fatal("nonces repeated across calls")
	}
}

func TestObjectTamperDetected(t *testing.T) {
	sender := makeIdentity(t)
	recipient := makeIdentity(t)

	wire, err := envelope.EncryptObject(memo{Subject: "fragile"}, sender.Private, recipient.Public)
	if err != nil {
		t.Fatalf("EncryptObject: %v", err)
	}
	noncePart, ctPart, _ := strings.Cut(wire, ":")
	ct, err := crypto.B64Dec(ctPart)
	if err != nil {
		t.Fatalf("B64Dec: %v", err)
	}
	for i := range ct {
		mangled := append([]byte(nil), ct...)
		mangled[i] ^= 0x01
		tampered := noncePart + ":" + crypto.B64(mangled)
		var out memo
		if err := envelope.DecryptObject(tampered, sender.Public, recipient.Private, &out); !errors.Is(err, domain.ErrDecrypt) {
			t.Fatalf("byte %d: want ErrDecrypt, got %v", i, err)
		}
	}
}

func TestObjectWrongKey(t *testing.T) {
	sender := makeIdentity(t)
	recipient := makeIdentity(t)
	impostor := makeIdentity(t)

	wire, err := envelope.EncryptObject(memo{Subject: "addressed"}, sender.Private, recipient.Public)
	if err != nil {
		t.Fatalf("EncryptObject: %v", err)
	}
	var out memo
	if err := envelope.DecryptObject(wire, impostor.Public, recipient.Private, &out); !errors.Is(err, domain.ErrDecrypt) {
		t.Fatalf("want ErrDecrypt for wrong sender key, got %v", err)
	}
}

func TestObjectMalformedText(t *testing.T) {
	recipient := makeIdentity(t)
	sender := makeIdentity(t)

	for _, wire := range []string{
		"",
		"no-separator",
		":" + crypto.B64([]byte("ct")),
		crypto.B64([]byte("nonce")) + ":",
		"!!!not-base64!!!:" + crypto.B64([]byte("ct")),
		crypto.B64([]byte("nonce")) + ":!!!not-base64!!!",
	} {
		var out memo
		if err := envelope.DecryptObject(wire, sender.Public, recipient.Private, &out); !errors.Is(err, domain.ErrDecrypt) {
			t.Fatalf("wire %q: want ErrDecrypt, got %v", wire, err)
		}
	}
}

func TestBufferRoundTrip(t *testing.T) {
	sender := makeIdentity(t)
	recipient := makeIdentity(t)

	for _, size := range []int{0, 1, 15, 16, 17, 255, 4096} {
		buf, err := crypto.RandomBytes(size)
		if err != nil {
			t.Fatalf("RandomBytes: %v", err)
		}
		wire, err := envelope.EncryptBuffer(buf, sender.Private, recipient.Public)
		if err != nil {
			t.Fatalf("size %d: EncryptBuffer: %v", size, err)
		}
		out, err := envelope.DecryptBuffer(wire, sender.Public, recipient.Private)
		if err != nil {
			t.Fatalf("size %d: DecryptBuffer: %v", size, err)
		}
		if !bytes.Equal(out, buf) {
			t.Fatalf("size %d: round trip mismatch", size)
		}
	}
}

func TestBufferTamperDetected(t *testing.T) {
	sender := makeIdentity(t)
	recipient := makeIdentity(t)

	wire, err := envelope.EncryptBuffer([]byte("wrapped key"), sender.Private, recipient.Public)
	if err != nil {
		t.Fatalf("EncryptBuffer: %v", err)
	}
	// Skip the length byte and nonce; flip ciphertext bytes only.
	for i := 1 + envelope.NonceSize; i < len(wire); i++ {
		mangled := append([]byte(nil), wire...)
		mangled[i] ^= 0x01
		if _, err := envelope.DecryptBuffer(mangled, sender.Public, recipient.Private); !errors.Is(err, domain.ErrDecrypt) {
			t.Fatalf("byte %d: want ErrDecrypt, got %v", i, err)
		}
	}
}

func TestBinaryWireFormat(t *testing.T) {
	e := envelope.Envelope{Nonce: []byte{0x01, 0x02}, Ciphertext: []byte{0xAA, 0xBB, 0xCC}}
	got, err := envelope.EncodeBinary(e)
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	want := []byte{0x02, 0x01, 0x02, 0xAA, 0xBB, 0xCC}
	if !bytes.Equal(got, want) {
		t.Fatalf("want % x, got % x", want, got)
	}

	back, err := envelope.DecodeBinary(got)
	if err != nil {
		t.Fatalf("DecodeBinary: %v", err)
	}
	if !bytes.Equal(back.Nonce, e.Nonce) || !bytes.Equal(back.Ciphertext, e.Ciphertext) {
		t.Fatalf("decode mismatch: %+v", back)
	}
}

func TestBinaryMalformed(t *testing.T) {
	for _, b := range [][]byte{
		nil,
		{},
		{0x00, 0xAA},       // zero nonce length
		{0x05, 0x01, 0x02}, // claims more nonce bytes than present
	} {
		if _, err := envelope.DecodeBinary(b); !errors.Is(err, domain.ErrDecrypt) {
			t.Fatalf("input % x: want ErrDecrypt, got %v", b, err)
		}
	}
}

func TestBinaryNonceBounds(t *testing.T) {
	long := make([]byte, 256)
	if _, err := envelope.EncodeBinary(envelope.Envelope{Nonce: long}); err == nil {
		t.Fatal("want error for 256-byte nonce")
	}
	if _, err := envelope.EncodeBinary(envelope.Envelope{Nonce: nil}); err == nil {
		t.Fatal("want error for empty nonce")
	}
}
