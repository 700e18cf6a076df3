// Package conv provides zero-copy reinterpretation between byte slices and
// strings for the matching engine.
//
// Section text views and frozen owned buffers are produced by reinterpreting
// already-validated bytes; copying them would defeat the zero-copy contract of
// the public iterators. These helpers must stay internal: exposing them would
// leak the raw, unvalidated representation of platform strings.
package conv

import "unsafe"

// String reinterprets b as a string without copying.
//
// The caller must guarantee that b is not mutated while the returned string
// is live, and (when the string is handed to a caller as validated text) that
// b is well-formed UTF-8.
//
//go:inline
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// Bytes reinterprets s as a byte slice without copying.
//
// The returned slice must never be written to; doing so would mutate string
// memory and is undefined behavior.
//
//go:inline
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
