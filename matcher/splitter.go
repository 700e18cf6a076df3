package matcher

import (
	"github.com/coregx/osbytes/pattern"
)

// Splitter yields the byte ranges of a buffer between consecutive pattern
// matches, from either end.
//
// Pieces cover the whole buffer, not just its valid sections: a piece is
// simply "the bytes between two matches" and may itself contain invalid
// bytes. Once the match stream is exhausted, exactly one final piece — the
// unconsumed middle of the buffer — is emitted, then the splitter reports
// exhaustion. An empty buffer therefore yields exactly one empty piece, and
// a buffer without matches yields exactly one piece, the buffer itself.
type Splitter struct {
	buf     []byte
	matches *Matches

	// Remainder range [low, high]: the unconsumed middle of the buffer.
	// low only increases (forward emission), high only decreases (backward
	// emission). Exhaustion is high < low; after the final piece is emitted
	// low is set to high+1 so that a subsequent call reports exhaustion
	// instead of re-emitting an empty piece.
	low, high int
}

// NewSplitter returns a split driver for pat over buf.
func NewSplitter(buf []byte, pat pattern.Pattern) *Splitter {
	return &Splitter{
		buf:     buf,
		matches: New(buf, pat),
		low:     0,
		high:    len(buf),
	}
}

// Clone returns an independent copy of the splitter. Both copies continue
// from the current position and yield identical remaining pieces.
func (s *Splitter) Clone() *Splitter {
	c := *s
	c.matches = s.matches.Clone()
	return &c
}

// Next returns the next piece from the front, or ok == false once exhausted.
func (s *Splitter) Next() ([]byte, bool) {
	if s.high < s.low {
		return nil, false
	}
	if m, ok := s.matches.Next(); ok {
		piece := s.buf[s.low:m.Start]
		s.low = m.End()
		return piece, true
	}
	return s.rest(), true
}

// NextBack returns the next piece from the back, or ok == false once
// exhausted. It requires a reversible pattern, like Matches.NextBack.
func (s *Splitter) NextBack() ([]byte, bool) {
	if s.high < s.low {
		return nil, false
	}
	if m, ok := s.matches.NextBack(); ok {
		piece := s.buf[m.End():s.high]
		s.high = m.Start
		return piece, true
	}
	return s.rest(), true
}

// Rest emits the unconsumed middle of the buffer as the final piece and
// marks the splitter exhausted. It returns ok == false if the splitter was
// already exhausted. Used by bounded splits (SplitN) to close out the
// stream early.
func (s *Splitter) Rest() ([]byte, bool) {
	if s.high < s.low {
		return nil, false
	}
	return s.rest(), true
}

// Exhausted reports whether all pieces have been emitted.
func (s *Splitter) Exhausted() bool {
	return s.high < s.low
}

func (s *Splitter) rest() []byte {
	piece := s.buf[s.low:s.high]
	s.low = s.high + 1
	return piece
}
