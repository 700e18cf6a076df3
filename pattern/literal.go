package pattern

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/osbytes/internal/bytesearch"
	"github.com/coregx/osbytes/internal/conv"
)

// Literal matches an exact substring.
//
// The empty literal matches the empty string at every rune boundary of the
// bound text, including both ends, mirroring ordinary string split semantics.
type Literal string

// Searcher binds the literal to text.
func (p Literal) Searcher(text string) Searcher {
	if len(p) == 0 {
		return &emptySearcher{text: text, limit: len(text)}
	}
	return &literalSearcher{text: text, needle: string(p), limit: len(text)}
}

// PrefixIn reports whether text starts with the literal.
func (p Literal) PrefixIn(text string) (int, bool) {
	if strings.HasPrefix(text, string(p)) {
		return len(p), true
	}
	return 0, false
}

// SuffixIn reports whether text ends with the literal.
func (p Literal) SuffixIn(text string) (int, bool) {
	if strings.HasSuffix(text, string(p)) {
		return len(p), true
	}
	return 0, false
}

// MatchesEmpty reports whether the literal is empty.
func (p Literal) MatchesEmpty() bool { return len(p) == 0 }

// literalSearcher enumerates non-overlapping occurrences of a non-empty
// needle within the [pos, limit) window.
type literalSearcher struct {
	text   string
	needle string
	pos    int
	limit  int
}

func (s *literalSearcher) NextMatch() (int, int, bool) {
	window := s.text[s.pos:s.limit]
	i := bytesearch.Index(conv.Bytes(window), conv.Bytes(s.needle))
	if i < 0 {
		s.pos = s.limit
		return 0, 0, false
	}
	start := s.pos + i
	end := start + len(s.needle)
	s.pos = end
	return start, end, true
}

func (s *literalSearcher) NextMatchBack() (int, int, bool) {
	window := s.text[s.pos:s.limit]
	i := bytesearch.LastIndex(conv.Bytes(window), conv.Bytes(s.needle))
	if i < 0 {
		s.limit = s.pos
		return 0, 0, false
	}
	start := s.pos + i
	end := start + len(s.needle)
	s.limit = start
	return start, end, true
}

func (s *literalSearcher) Clone() Searcher {
	c := *s
	return &c
}

// emptySearcher yields a zero-width match at every rune boundary.
// Forward consumption walks boundaries left to right, backward consumption
// right to left; the two streams share the window and meet in the middle.
type emptySearcher struct {
	text      string
	pos       int
	limit     int
	exhausted bool
}

func (s *emptySearcher) NextMatch() (int, int, bool) {
	if s.exhausted {
		return 0, 0, false
	}
	at := s.pos
	if s.pos >= s.limit {
		s.exhausted = true
	} else {
		_, size := utf8.DecodeRuneInString(s.text[s.pos:])
		s.pos += size
	}
	return at, at, true
}

func (s *emptySearcher) NextMatchBack() (int, int, bool) {
	if s.exhausted {
		return 0, 0, false
	}
	at := s.limit
	if s.limit <= s.pos {
		s.exhausted = true
	} else {
		_, size := utf8.DecodeLastRuneInString(s.text[:s.limit])
		s.limit -= size
	}
	return at, at, true
}

func (s *emptySearcher) Clone() Searcher {
	c := *s
	return &c
}
