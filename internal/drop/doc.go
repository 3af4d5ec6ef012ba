// Package drop provides the store-and-forward drop box parcels travel
// through between peers.
//
// The drop never sees plaintext or private keys; it queues opaque parcels
// (ciphertext plus public keys) per recipient fingerprint until they are
// fetched and acknowledged.
//
// HTTP API
//
//	POST /parcel/{fingerprint}
//	    Enqueue a parcel destined to {fingerprint}. If Timestamp is zero,
//	    the server fills it with the current Unix time.
//
//	GET /parcel/{fingerprint}?limit=N
//	    Return up to N queued parcels. If limit is absent or greater than
//	    the queue length, all queued parcels are returned.
//
//	POST /parcel/{fingerprint}/ack { "count": N }
//	    Drop the first N queued parcels. If N exceeds the queue length, the
//	    queue is cleared.
//
// All state is held in memory and lost on process exit. Responses are JSON;
// non-2xx statuses carry a short error message. Client and Handler both live
// here so tests exercise the same wire code the binaries run.
package drop
