// Package content encrypts bulk data under self-contained symmetric keys so
// that the key, not the data, is the unit exchanged via the envelope codec.
//
// A Key names an Algorithm from a closed set and carries key material sized
// for it. The default, AES-256-CBC, provides confidentiality only: integrity
// for bulk content is deliberately left to the transport or to the envelope
// that wraps the key. The None algorithm is an explicit passthrough for data
// that must flow through the same pipeline unmodified; it can only be
// obtained via NewPlaintextKey, never by misspelling an algorithm name.
//
// Transform construction is separate from application so large content can be
// processed by a streaming implementation; the engines here operate on whole
// buffers.
package content
