// Package common holds small helpers shared across client layers.
package common

// WipeByteArray zeroes the buffer in place. Callers use it to scrub
// passwords from memory once they have been sent to the service.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
