package osbytes

import (
	"unicode/utf8"

	"github.com/coregx/osbytes/internal/conv"
)

// String is an owned, growable platform-native string.
//
// It pairs a byte buffer with the Encoding that governs how content may be
// adopted, extracted, and concatenated. The zero value behaves as an empty
// native-encoded string.
type String struct {
	enc Encoding
	buf []byte
}

// NewString returns an empty owned string in the current platform's
// encoding.
func NewString() String {
	return String{enc: Native()}
}

// NewStringIn returns an empty owned string in the given encoding.
func NewStringIn(enc Encoding) String {
	return String{enc: enc}
}

// WithCapacity returns an empty owned string with room for at least n bytes
// before reallocation.
func WithCapacity(n int) String {
	return String{enc: Native(), buf: make([]byte, 0, n)}
}

// FromString builds an owned native string from validated text. Valid UTF-8
// is representable in every encoding, so this cannot fail.
func FromString(text string) String {
	buf := make([]byte, len(text))
	copy(buf, text)
	return String{enc: Native(), buf: buf}
}

// Str returns a borrowed view of the current content. The view is
// invalidated by any subsequent mutation of the owned string.
func (s String) Str() Str {
	return Str{raw: s.buf}
}

// Len returns the length in bytes.
func (s String) Len() int { return len(s.buf) }

// Cap returns the current capacity in bytes.
func (s String) Cap() int { return cap(s.buf) }

// IsEmpty reports whether the string contains no bytes.
func (s String) IsEmpty() bool { return len(s.buf) == 0 }

// Encoding returns the encoding governing this string.
func (s String) Encoding() Encoding {
	if s.enc == nil {
		return Native()
	}
	return s.enc
}

// Reserve grows the capacity so that at least additional more bytes fit
// without reallocation.
func (s *String) Reserve(additional int) {
	if cap(s.buf)-len(s.buf) >= additional {
		return
	}
	grown := make([]byte, len(s.buf), len(s.buf)+additional)
	copy(grown, s.buf)
	s.buf = grown
}

// Clear empties the string, keeping its capacity.
func (s *String) Clear() {
	s.buf = s.buf[:0]
}

// Push appends the content of a view. Under the Wide encoding a trailing
// high surrogate and a leading low surrogate join into one code point at
// the seam, keeping the buffer well-formed WTF-8.
func (s *String) Push(v Str) {
	s.buf = s.Encoding().appendSlice(s.buf, v.raw)
}

// PushString appends validated text.
func (s *String) PushString(text string) {
	s.buf = s.Encoding().appendSlice(s.buf, conv.Bytes(text))
}

// IntoString returns the content as validated text, zero-copy, freezing the
// owned buffer. It reports false, leaving the string intact, when the
// content is not fully valid UTF-8.
func (s *String) IntoString() (string, bool) {
	if !utf8.Valid(s.buf) {
		return "", false
	}
	text := conv.String(s.buf)
	s.buf = nil
	return text, true
}

// IntoStringLossy returns the content as text, replacing each maximal
// invalid run with one U+FFFD.
func (s *String) IntoStringLossy() string {
	if text, ok := s.IntoString(); ok {
		return text
	}
	return s.Str().DecodeLossy()
}

// Concat builds an owned string by appending every part in order, under the
// current platform's encoding.
func Concat(parts []Str) String {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	out := WithCapacity(total)
	for _, p := range parts {
		out.Push(p)
	}
	return out
}

// Join builds an owned string by appending every part in order with sep
// between consecutive parts, under the current platform's encoding.
func Join(parts []Str, sep Str) String {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	if len(parts) > 1 {
		total += sep.Len() * (len(parts) - 1)
	}
	out := WithCapacity(total)
	for i, p := range parts {
		if i > 0 {
			out.Push(sep)
		}
		out.Push(p)
	}
	return out
}
