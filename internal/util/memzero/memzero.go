// Package memzero wipes key material from byte slices once it is no
// longer needed.
package memzero

import "crypto/subtle"

// Zero clears b in place. Going through subtle.ConstantTimeCopy keeps the
// compiler from eliding the wipe as a dead store.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
