// Package share turns plaintext into parcels and back.
//
// Seal generates a one-off content key, encrypts the content under it, then
// wraps the key's serialized form for the recipient using the binary envelope
// format. The parcel carries both ciphertexts plus the sender's public key so
// the recipient can derive the shared secret. Open reverses the process.
//
// The content key is what gets asymmetric protection; bulk content rides
// under the symmetric key alone, so its integrity is only as good as the
// envelope around the key and the transport channel.
package share
