// Package sections partitions a raw byte buffer into its maximal runs of
// valid UTF-8 text.
//
// A platform-native string is mostly, but not necessarily, well-formed UTF-8.
// Textual pattern matching over such a buffer is only meaningful inside the
// well-formed runs, so the partitioner exposes them as Sections: absolute
// byte offset plus a zero-copy text view. Bytes that are not part of any
// well-formed encoding are never yielded.
//
// The iterator is lazy and double-ended: Next walks sections front to back,
// NextBack walks them back to front, and the two directions share one
// unscanned window so that they rendezvous without ever yielding the same
// byte range twice.
package sections

import (
	"unicode/utf8"

	"github.com/coregx/osbytes/internal/conv"
)

// Section is a maximal contiguous valid-UTF-8 run within a byte buffer.
//
// Offset is the absolute byte offset of Text[0] within the original buffer.
// Text is a zero-copy view: every byte belongs to a well-formed UTF-8
// encoding, and the run is maximal (the bytes immediately before and after
// it, if any, are not part of any valid encoding).
type Section struct {
	Offset int
	Text   string
}

// End returns the absolute byte offset one past the last byte of the section.
func (s Section) End() int {
	return s.Offset + len(s.Text)
}

// Iter enumerates the Sections of a byte buffer from either end.
//
// The zero value is an exhausted iterator. An Iter borrows the buffer
// read-only; the buffer must not be mutated while the Iter or any Section it
// yielded is live.
type Iter struct {
	buf []byte

	// Unscanned window [lo, hi). Next only moves lo forward, NextBack only
	// moves hi backward. Sections are maximal, so no valid run ever crosses
	// either bound: lo is always just past a yielded section (whose next
	// byte is invalid) and hi is always the start of a yielded section
	// (whose previous byte is invalid).
	lo, hi int
}

// New returns an iterator over the sections of buf.
func New(buf []byte) *Iter {
	return &Iter{buf: buf, hi: len(buf)}
}

// Clone returns an independent copy of the iterator. Both copies continue
// from the current position and yield identical remaining sections.
func (it *Iter) Clone() *Iter {
	c := *it
	return &c
}

// Next yields the next section from the front, or false when no valid run
// remains in the unscanned window.
func (it *Iter) Next() (Section, bool) {
	start := it.lo
	for start < it.hi && !validRuneAt(it.buf, start, it.hi) {
		start++
	}
	if start == it.hi {
		it.lo = it.hi
		return Section{}, false
	}

	end := start
	for end < it.hi {
		r, size := utf8.DecodeRune(it.buf[end:it.hi])
		if invalid(r, size) {
			break
		}
		end += size
	}

	it.lo = end
	return Section{Offset: start, Text: conv.String(it.buf[start:end])}, true
}

// NextBack yields the next section from the back, or false when no valid run
// remains in the unscanned window.
func (it *Iter) NextBack() (Section, bool) {
	end := it.hi
	for end > it.lo && !validRuneBefore(it.buf, it.lo, end) {
		end--
	}
	if end == it.lo {
		it.hi = it.lo
		return Section{}, false
	}

	start := end
	for start > it.lo {
		r, size := utf8.DecodeLastRune(it.buf[it.lo:start])
		if invalid(r, size) {
			break
		}
		start -= size
	}

	it.hi = start
	return Section{Offset: start, Text: conv.String(it.buf[start:end])}, true
}

// validRuneAt reports whether a well-formed encoding starts at buf[i],
// entirely within buf[i:hi].
func validRuneAt(buf []byte, i, hi int) bool {
	return !invalid(utf8.DecodeRune(buf[i:hi]))
}

// validRuneBefore reports whether a well-formed encoding ends at buf[end],
// entirely within buf[lo:end].
func validRuneBefore(buf []byte, lo, end int) bool {
	return !invalid(utf8.DecodeLastRune(buf[lo:end]))
}

// invalid interprets a DecodeRune/DecodeLastRune result. Malformed input is
// signaled as (RuneError, 1) or (RuneError, 0); a genuine U+FFFD in the
// input decodes with size 3.
func invalid(r rune, size int) bool {
	return r == utf8.RuneError && size <= 1
}
