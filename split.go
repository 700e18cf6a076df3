package osbytes

import (
	"iter"

	"github.com/coregx/osbytes/matcher"
	"github.com/coregx/osbytes/pattern"
)

// Match re-exports the match driver's result type: an absolute byte offset
// plus the matched text.
type Match = matcher.Match

func newMatcher(s Str, p pattern.Pattern) *matcher.Matches {
	return matcher.New(s.raw, p)
}

// Split iterates the pieces of s between matches of p, front to back.
//
// The piece stream covers the whole buffer: pieces may contain invalid
// bytes. A buffer without matches yields one piece, the buffer itself; an
// empty buffer yields one empty piece.
type Split struct {
	inner *matcher.Splitter
}

// Split returns a forward split iterator over s.
func (s Str) Split(p pattern.Pattern) *Split {
	return &Split{inner: matcher.NewSplitter(s.raw, p)}
}

// Next returns the next piece from the front.
func (it *Split) Next() (Str, bool) {
	b, ok := it.inner.Next()
	return Str{raw: b}, ok
}

// NextBack returns the next piece from the back. It panics for patterns
// that do not support reverse search.
func (it *Split) NextBack() (Str, bool) {
	b, ok := it.inner.NextBack()
	return Str{raw: b}, ok
}

// Clone returns an independent copy continuing from the current position.
func (it *Split) Clone() *Split {
	return &Split{inner: it.inner.Clone()}
}

// All returns a single-use range-over-func view of the remaining pieces.
func (it *Split) All() iter.Seq[Str] {
	return seq(it.Next)
}

// RSplit iterates the pieces of s between matches of p, back to front.
// It requires a pattern that supports reverse search.
type RSplit struct {
	inner *matcher.Splitter
}

// RSplit returns a backward split iterator over s.
func (s Str) RSplit(p pattern.Pattern) *RSplit {
	return &RSplit{inner: matcher.NewSplitter(s.raw, p)}
}

// Next returns the next piece from the back.
func (it *RSplit) Next() (Str, bool) {
	b, ok := it.inner.NextBack()
	return Str{raw: b}, ok
}

// NextBack returns the next piece from the front.
func (it *RSplit) NextBack() (Str, bool) {
	b, ok := it.inner.Next()
	return Str{raw: b}, ok
}

// Clone returns an independent copy continuing from the current position.
func (it *RSplit) Clone() *RSplit {
	return &RSplit{inner: it.inner.Clone()}
}

// All returns a single-use range-over-func view of the remaining pieces.
func (it *RSplit) All() iter.Seq[Str] {
	return seq(it.Next)
}

// SplitTerminator is Split for terminator-delimited content: when the
// buffer ends exactly on a match, the final empty piece is suppressed.
type SplitTerminator struct {
	inner *matcher.Splitter
}

// SplitTerminator returns a forward terminator-split iterator over s.
func (s Str) SplitTerminator(p pattern.Pattern) *SplitTerminator {
	return &SplitTerminator{inner: matcher.NewSplitter(s.raw, p)}
}

// Next returns the next piece from the front, suppressing a trailing empty
// piece.
func (it *SplitTerminator) Next() (Str, bool) {
	b, ok := it.inner.Next()
	if !ok {
		return Str{}, false
	}
	if len(b) == 0 && it.inner.Exhausted() {
		// The final piece was empty: the buffer ended on a match.
		return Str{}, false
	}
	return Str{raw: b}, true
}

// Clone returns an independent copy continuing from the current position.
func (it *SplitTerminator) Clone() *SplitTerminator {
	return &SplitTerminator{inner: it.inner.Clone()}
}

// All returns a single-use range-over-func view of the remaining pieces.
func (it *SplitTerminator) All() iter.Seq[Str] {
	return seq(it.Next)
}

// RSplitTerminator is RSplit for terminator-delimited content: the empty
// piece after a terminating match at the buffer's end is suppressed.
// It requires a pattern that supports reverse search.
type RSplitTerminator struct {
	inner   *matcher.Splitter
	started bool
}

// RSplitTerminator returns a backward terminator-split iterator over s.
func (s Str) RSplitTerminator(p pattern.Pattern) *RSplitTerminator {
	return &RSplitTerminator{inner: matcher.NewSplitter(s.raw, p)}
}

// Next returns the next piece from the back, suppressing the empty piece
// produced by a match at the very end of the buffer.
func (it *RSplitTerminator) Next() (Str, bool) {
	b, ok := it.inner.NextBack()
	if ok && !it.started && len(b) == 0 {
		// The piece at the buffer's very end was empty: the buffer either
		// ends on a match or is itself empty.
		b, ok = it.inner.NextBack()
	}
	it.started = true
	return Str{raw: b}, ok
}

// Clone returns an independent copy continuing from the current position.
func (it *RSplitTerminator) Clone() *RSplitTerminator {
	return &RSplitTerminator{inner: it.inner.Clone(), started: it.started}
}

// All returns a single-use range-over-func view of the remaining pieces.
func (it *RSplitTerminator) All() iter.Seq[Str] {
	return seq(it.Next)
}

// SplitN is Split bounded to at most n pieces: the nth piece, if reached, is
// the unsplit remainder of the buffer.
type SplitN struct {
	inner *matcher.Splitter
	n     int
}

// SplitN returns a forward split iterator over s yielding at most n pieces.
// n <= 0 yields no pieces.
func (s Str) SplitN(n int, p pattern.Pattern) *SplitN {
	return &SplitN{inner: matcher.NewSplitter(s.raw, p), n: n}
}

// Next returns the next piece from the front.
func (it *SplitN) Next() (Str, bool) {
	switch {
	case it.n <= 0:
		return Str{}, false
	case it.n == 1:
		it.n = 0
		b, ok := it.inner.Rest()
		return Str{raw: b}, ok
	default:
		it.n--
		b, ok := it.inner.Next()
		return Str{raw: b}, ok
	}
}

// Clone returns an independent copy continuing from the current position.
func (it *SplitN) Clone() *SplitN {
	return &SplitN{inner: it.inner.Clone(), n: it.n}
}

// All returns a single-use range-over-func view of the remaining pieces.
func (it *SplitN) All() iter.Seq[Str] {
	return seq(it.Next)
}

// RSplitN is RSplit bounded to at most n pieces: the nth piece, if reached,
// is the unsplit front remainder of the buffer. It requires a pattern that
// supports reverse search.
type RSplitN struct {
	inner *matcher.Splitter
	n     int
}

// RSplitN returns a backward split iterator over s yielding at most n
// pieces. n <= 0 yields no pieces.
func (s Str) RSplitN(n int, p pattern.Pattern) *RSplitN {
	return &RSplitN{inner: matcher.NewSplitter(s.raw, p), n: n}
}

// Next returns the next piece from the back.
func (it *RSplitN) Next() (Str, bool) {
	switch {
	case it.n <= 0:
		return Str{}, false
	case it.n == 1:
		it.n = 0
		b, ok := it.inner.Rest()
		return Str{raw: b}, ok
	default:
		it.n--
		b, ok := it.inner.NextBack()
		return Str{raw: b}, ok
	}
}

// Clone returns an independent copy continuing from the current position.
func (it *RSplitN) Clone() *RSplitN {
	return &RSplitN{inner: it.inner.Clone(), n: it.n}
}

// All returns a single-use range-over-func view of the remaining pieces.
func (it *RSplitN) All() iter.Seq[Str] {
	return seq(it.Next)
}

// Matches iterates the matched text of p within s, front to back.
type Matches struct {
	inner *matcher.Matches
}

// Matches returns a forward match iterator over s.
func (s Str) Matches(p pattern.Pattern) *Matches {
	return &Matches{inner: newMatcher(s, p)}
}

// Next returns the next match from the front.
func (it *Matches) Next() (Match, bool) {
	return it.inner.Next()
}

// NextBack returns the next match from the back. It panics for patterns
// that do not support reverse search.
func (it *Matches) NextBack() (Match, bool) {
	return it.inner.NextBack()
}

// Clone returns an independent copy continuing from the current position.
func (it *Matches) Clone() *Matches {
	return &Matches{inner: it.inner.Clone()}
}

// All returns a single-use range-over-func view of the remaining matches.
func (it *Matches) All() iter.Seq[Match] {
	return seq(it.Next)
}

// RMatches iterates the matched text of p within s, back to front.
// It requires a pattern that supports reverse search.
type RMatches struct {
	inner *matcher.Matches
}

// RMatches returns a backward match iterator over s.
func (s Str) RMatches(p pattern.Pattern) *RMatches {
	return &RMatches{inner: newMatcher(s, p)}
}

// Next returns the next match from the back.
func (it *RMatches) Next() (Match, bool) {
	return it.inner.NextBack()
}

// NextBack returns the next match from the front.
func (it *RMatches) NextBack() (Match, bool) {
	return it.inner.Next()
}

// Clone returns an independent copy continuing from the current position.
func (it *RMatches) Clone() *RMatches {
	return &RMatches{inner: it.inner.Clone()}
}

// All returns a single-use range-over-func view of the remaining matches.
func (it *RMatches) All() iter.Seq[Match] {
	return seq(it.Next)
}

// seq adapts a Next-style pull function to a range-over-func sequence.
func seq[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
