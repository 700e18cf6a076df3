// Package osbytes provides pattern search, matching, and splitting over
// platform-native byte strings.
//
// A platform-native string is a sequence of bytes that is mostly, but not
// necessarily, valid UTF-8: POSIX file names are arbitrary non-zero bytes,
// and wide-character platforms use a UTF-8 superset (WTF-8) that tolerates
// unpaired surrogates. Such buffers cannot be handled as validated text, yet
// most of their content is ordinary text that callers want to search, split,
// and match with ordinary textual patterns.
//
// osbytes partitions a buffer into its maximal valid-UTF-8 runs (sections),
// runs a textual pattern engine independently inside each section while
// preserving original byte offsets, and derives matches and split pieces
// from that stream. Invalid byte runs are never matched against, but split
// pieces may contain them.
//
// Basic usage:
//
//	s := osbytes.New([]byte("he\xFFllo"))
//
//	// Sections: (0, "he") and (3, "llo")
//	for it := s.Matches(pattern.Rune('l')); ; {
//	    m, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(m.Start, m.Text) // 4 "l", then 5 "l"
//	}
//
//	// Split pieces may straddle invalid bytes:
//	it := s.Split(pattern.Rune('l'))
//	// yields "he\xFF", "", "o"
//
// All operations are total: malformed input is a first-class, expected
// condition, never an error. Every iterator is lazy, cloneable, and borrows
// the buffer read-only, so any number of iterators may walk the same buffer
// concurrently.
package osbytes

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/coregx/osbytes/internal/bytesearch"
	"github.com/coregx/osbytes/internal/conv"
	"github.com/coregx/osbytes/pattern"
	"github.com/coregx/osbytes/sections"
)

// Str is an immutable borrowed view of a platform-native string.
//
// The underlying bytes are never exposed directly and never mutated by this
// package; the caller owns their lifetime and must not mutate them while any
// Str, iterator, or decoded view over them is live. The zero value is the
// empty string.
type Str struct {
	raw []byte
}

// New wraps raw bytes as a Str without copying.
func New(b []byte) Str {
	return Str{raw: b}
}

// Text views a Go string as a Str without copying. The result is always
// fully valid text.
func Text(s string) Str {
	return Str{raw: conv.Bytes(s)}
}

// Len returns the length in bytes.
func (s Str) Len() int { return len(s.raw) }

// IsEmpty reports whether the string contains no bytes.
func (s Str) IsEmpty() bool { return len(s.raw) == 0 }

// Equal reports whether s and other hold identical bytes.
func (s Str) Equal(other Str) bool {
	return bytes.Equal(s.raw, other.raw)
}

// Compare returns -1, 0, or +1 ordering s against other bytewise.
func (s Str) Compare(other Str) int {
	return bytes.Compare(s.raw, other.raw)
}

// EqualString reports whether s holds exactly the bytes of text.
func (s Str) EqualString(text string) bool {
	return string(s.raw) == text
}

// Hash64 returns a 64-bit FNV-1a hash of the raw bytes, for callers keying
// their own tables by platform string content.
func (s Str) Hash64() uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for _, b := range s.raw {
		h ^= uint64(b)
		h *= prime64
	}
	return h
}

// String returns a lossy textual form for display, with each maximal invalid
// run replaced by one U+FFFD. It implements fmt.Stringer.
func (s Str) String() string {
	return s.DecodeLossy()
}

// Decode returns the string as validated text. It succeeds only if the whole
// buffer is a single valid-UTF-8 run; the result is a zero-copy view.
func (s Str) Decode() (string, bool) {
	if !utf8.Valid(s.raw) {
		return "", false
	}
	return conv.String(s.raw), true
}

// DecodeLossy returns the string as text, replacing each maximal invalid run
// with a single U+FFFD. When the buffer is fully valid the result is a
// zero-copy view.
func (s Str) DecodeLossy() string {
	if text, ok := s.Decode(); ok {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(s.raw))
	prev := 0
	it := s.Sections()
	for {
		sec, ok := it.Next()
		if !ok {
			break
		}
		if sec.Offset > prev {
			sb.WriteRune(utf8.RuneError)
		}
		sb.WriteString(sec.Text)
		prev = sec.End()
	}
	if prev < len(s.raw) {
		sb.WriteRune(utf8.RuneError)
	}
	return sb.String()
}

// CString returns a copy of the bytes with a terminating NUL appended, for
// handing to C-style APIs. It fails with ErrInteriorNUL if the buffer
// contains an embedded zero byte; that is the only failure-shaped outcome.
func (s Str) CString() ([]byte, error) {
	if bytesearch.IndexByte(s.raw, 0) >= 0 {
		return nil, ErrInteriorNUL
	}
	out := make([]byte, len(s.raw)+1)
	copy(out, s.raw)
	return out, nil
}

// Sections returns an iterator over the maximal valid-UTF-8 runs of the
// string, from either end.
func (s Str) Sections() *sections.Iter {
	return sections.New(s.raw)
}

// Contains reports whether needle occurs as a contiguous byte run inside s,
// independent of UTF-8 validity on either side. An empty needle is always
// contained.
func (s Str) Contains(needle Str) bool {
	return bytesearch.Contains(s.raw, needle.raw)
}

// HasPrefix reports whether s begins with the raw bytes of needle.
func (s Str) HasPrefix(needle Str) bool {
	return bytes.HasPrefix(s.raw, needle.raw)
}

// HasSuffix reports whether s ends with the raw bytes of needle.
func (s Str) HasSuffix(needle Str) bool {
	return bytes.HasSuffix(s.raw, needle.raw)
}

// ContainsPattern reports whether the pattern matches anywhere within the
// valid sections of s.
func (s Str) ContainsPattern(p pattern.Pattern) bool {
	m := newMatcher(s, p)
	_, ok := m.Next()
	return ok
}

// StartsWith reports whether the pattern matches a prefix of s. A pattern
// can only match at the very start if byte 0 begins a valid section (or the
// pattern matches the empty string).
func (s Str) StartsWith(p pattern.Pattern) bool {
	_, ok := p.PrefixIn(s.validPrefix())
	return ok
}

// EndsWith reports whether the pattern matches a suffix of s.
func (s Str) EndsWith(p pattern.Pattern) bool {
	_, ok := p.SuffixIn(s.validSuffix())
	return ok
}

// HasPrefixString reports whether s begins with the bytes of prefix.
func (s Str) HasPrefixString(prefix string) bool {
	return bytes.HasPrefix(s.raw, conv.Bytes(prefix))
}

// TrimPrefixString returns s without the given prefix. It reports false,
// returning s unchanged, when s does not begin with prefix.
func (s Str) TrimPrefixString(prefix string) (Str, bool) {
	if !s.HasPrefixString(prefix) {
		return s, false
	}
	return Str{raw: s.raw[len(prefix):]}, true
}

// ShiftRune splits off the first code point of the string's valid prefix,
// returning it and the rest. It reports false when the buffer is empty or
// begins with an invalid byte.
func (s Str) ShiftRune() (rune, Str, bool) {
	prefix := s.validPrefix()
	if prefix == "" {
		return 0, s, false
	}
	r, size := utf8.DecodeRuneInString(prefix)
	return r, Str{raw: s.raw[size:]}, true
}

// CutRune splits the string at the first occurrence of boundary within its
// valid prefix, returning the text before the boundary and everything after
// it. It reports false when the boundary does not occur before the first
// invalid byte.
func (s Str) CutRune(boundary rune) (string, Str, bool) {
	prefix := s.validPrefix()
	i := strings.IndexRune(prefix, boundary)
	if i < 0 {
		return "", s, false
	}
	return prefix[:i], Str{raw: s.raw[i+utf8.RuneLen(boundary):]}, true
}

// validPrefix returns the maximal valid-UTF-8 prefix of the buffer, which is
// empty when byte 0 is invalid.
func (s Str) validPrefix() string {
	sec, ok := s.Sections().Next()
	if !ok || sec.Offset != 0 {
		return ""
	}
	return sec.Text
}

// validSuffix returns the maximal valid-UTF-8 suffix of the buffer, which is
// empty when the last byte is invalid.
func (s Str) validSuffix() string {
	sec, ok := s.Sections().NextBack()
	if !ok || sec.End() != len(s.raw) {
		return ""
	}
	return sec.Text
}
