// Package matcher drives pattern searches across the valid-UTF-8 sections of
// a raw byte buffer.
//
// Matches is the bidirectional match driver: a front cursor and a back cursor
// each walk the buffer's sections, binding a fresh search engine to every
// section they enter. Match offsets are translated back into the original
// buffer's coordinate space. When the two cursors reach the same section they
// converge onto a single shared engine, so matches are never duplicated or
// skipped no matter how forward and backward calls are interleaved.
//
// Splitter derives split pieces — the byte ranges between consecutive
// matches — from the match stream. Matches always fall inside valid sections,
// but split pieces span the whole buffer and may contain invalid bytes.
package matcher

import (
	"github.com/coregx/osbytes/pattern"
	"github.com/coregx/osbytes/sections"
)

// Match is one pattern match, in the original buffer's coordinates.
//
// Start is the absolute byte offset of the match; Text is the matched text,
// a zero-copy view lying entirely within a single section.
type Match struct {
	Start int
	Text  string
}

// End returns the absolute byte offset one past the last byte of the match.
func (m Match) End() int {
	return m.Start + len(m.Text)
}

// cursor is one direction's position: the section currently being searched
// and the live engine bound to its text. A nil engine means the cursor has
// not yet entered a section, or has exhausted the previous one.
type cursor struct {
	section sections.Section
	eng     pattern.Searcher
}

// Matches enumerates a pattern's matches over a byte buffer from either end.
//
// The zero value is not usable; construct with New. A Matches borrows the
// buffer read-only and owns all of its own state, so independent Matches
// values may iterate the same buffer concurrently.
type Matches struct {
	pat   pattern.Pattern
	secs  *sections.Iter
	front cursor
	back  cursor
}

// New returns a match driver for pat over buf.
func New(buf []byte, pat pattern.Pattern) *Matches {
	return &Matches{
		pat:   pat,
		secs:  sections.New(buf),
		front: cursor{section: sections.Section{Offset: 0}},
		back:  cursor{section: sections.Section{Offset: len(buf)}},
	}
}

// Clone returns an independent copy of the driver. Both copies continue from
// the current position and yield identical remaining match streams.
func (m *Matches) Clone() *Matches {
	c := *m
	c.secs = m.secs.Clone()
	if m.front.eng != nil {
		c.front.eng = m.front.eng.Clone()
	}
	if m.back.eng != nil {
		c.back.eng = m.back.eng.Clone()
	}
	return &c
}

// converged reports whether the front and back cursors have met on the same
// terminal section.
func (m *Matches) converged() bool {
	return m.front.section.Offset == m.back.section.Offset
}

// shared returns the cursor serving both directions after convergence: the
// front if its engine is live, else the back. The engine always travels with
// the section it was bound to, so offset translation stays correct no matter
// which cursor originally pulled the terminal section. Once either direction
// exhausts the shared engine, the other sees exhaustion too.
func (m *Matches) shared() *cursor {
	if m.front.eng != nil {
		return &m.front
	}
	return &m.back
}

// Next returns the next match from the front, or ok == false once the stream
// is exhausted.
func (m *Matches) Next() (Match, bool) {
	for {
		if m.converged() {
			cur := m.shared()
			if cur.eng == nil {
				return Match{}, false
			}
			start, end, ok := cur.eng.NextMatch()
			if !ok {
				return Match{}, false
			}
			sec := cur.section
			return Match{Start: sec.Offset + start, Text: sec.Text[start:end]}, true
		}

		if m.front.eng == nil {
			sec, ok := m.secs.Next()
			if !ok {
				// No sections remain ahead: the back cursor holds the
				// terminal section. Jump to it and retry as converged.
				m.front.section = m.back.section
				continue
			}
			m.front.section = sec
			m.front.eng = m.pat.Searcher(sec.Text)
		}

		if start, end, ok := m.front.eng.NextMatch(); ok {
			sec := m.front.section
			return Match{Start: sec.Offset + start, Text: sec.Text[start:end]}, true
		}

		// Section exhausted; advance to the next one.
		m.front.eng = nil
	}
}

// NextBack returns the next match from the back, or ok == false once the
// stream is exhausted.
//
// NextBack panics if the pattern's searcher does not implement
// pattern.ReverseSearcher; all patterns in the pattern package do.
func (m *Matches) NextBack() (Match, bool) {
	for {
		if m.converged() {
			cur := m.shared()
			if cur.eng == nil {
				return Match{}, false
			}
			start, end, ok := reverse(cur.eng).NextMatchBack()
			if !ok {
				return Match{}, false
			}
			sec := cur.section
			return Match{Start: sec.Offset + start, Text: sec.Text[start:end]}, true
		}

		if m.back.eng == nil {
			sec, ok := m.secs.NextBack()
			if !ok {
				// No sections remain behind: the front cursor holds the
				// terminal section. Jump to it and retry as converged.
				m.back.section = m.front.section
				continue
			}
			m.back.section = sec
			m.back.eng = m.pat.Searcher(sec.Text)
		}

		if start, end, ok := reverse(m.back.eng).NextMatchBack(); ok {
			sec := m.back.section
			return Match{Start: sec.Offset + start, Text: sec.Text[start:end]}, true
		}

		// Section exhausted; advance to the previous one.
		m.back.eng = nil
	}
}

// reverse asserts that eng supports backward search.
func reverse(eng pattern.Searcher) pattern.ReverseSearcher {
	rev, ok := eng.(pattern.ReverseSearcher)
	if !ok {
		panic("matcher: pattern does not support reverse search")
	}
	return rev
}
