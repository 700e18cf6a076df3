package osbytes

import "errors"

// Common conversion errors.
var (
	// ErrInteriorNUL indicates that a buffer cannot be represented as a
	// C-style null-terminated string because it contains an embedded zero
	// byte.
	ErrInteriorNUL = errors.New("osbytes: interior NUL byte")
)
