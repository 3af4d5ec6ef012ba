package domain

// Parcel is the wire-format unit posted to and fetched from a drop server.
//
// Content is bulk data sealed under a one-off content key; WrappedKey is that
// key's serialized form, encrypted to the recipient with the binary envelope
// format. The drop server only ever sees ciphertext and public keys.
type Parcel struct {
	From       Fingerprint  `json:"from"`
	To         Fingerprint  `json:"to"`
	SenderKey  X25519Public `json:"sender_key"`
	WrappedKey []byte       `json:"wrapped_key"`
	Content    []byte       `json:"content"`
	Timestamp  int64        `json:"timestamp"`
}

// Contact pairs a local name with a peer public key.
type Contact struct {
	Name string       `json:"name"`
	Key  X25519Public `json:"key"`
}
