package pattern

import (
	"unicode/utf8"
)

// Rune matches a single code point.
//
// A value that is not a valid code point (surrogates, out-of-range values)
// never matches anything.
type Rune rune

// Searcher binds the rune to text.
func (p Rune) Searcher(text string) Searcher {
	if utf8.RuneLen(rune(p)) < 0 {
		return &funcSearcher{text: text, pred: never, limit: len(text)}
	}
	return &literalSearcher{text: text, needle: string(rune(p)), limit: len(text)}
}

// PrefixIn reports whether text starts with the rune.
func (p Rune) PrefixIn(text string) (int, bool) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || r != rune(p) {
		return 0, false
	}
	return size, true
}

// SuffixIn reports whether text ends with the rune.
func (p Rune) SuffixIn(text string) (int, bool) {
	r, size := utf8.DecodeLastRuneInString(text)
	if size == 0 || r != rune(p) {
		return 0, false
	}
	return size, true
}

// MatchesEmpty always reports false: a rune match is never zero-width.
func (p Rune) MatchesEmpty() bool { return false }

// Func matches any single code point for which the predicate reports true.
//
// The predicate is only ever applied to code points decoded from valid
// UTF-8 section text, never to U+FFFD stand-ins for invalid bytes.
type Func func(rune) bool

// Searcher binds the predicate to text.
func (p Func) Searcher(text string) Searcher {
	return &funcSearcher{text: text, pred: p, limit: len(text)}
}

// PrefixIn reports whether text starts with a matching rune.
func (p Func) PrefixIn(text string) (int, bool) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || !p(r) {
		return 0, false
	}
	return size, true
}

// SuffixIn reports whether text ends with a matching rune.
func (p Func) SuffixIn(text string) (int, bool) {
	r, size := utf8.DecodeLastRuneInString(text)
	if size == 0 || !p(r) {
		return 0, false
	}
	return size, true
}

// MatchesEmpty always reports false.
func (p Func) MatchesEmpty() bool { return false }

// never is the predicate of a searcher that cannot match.
func never(rune) bool { return false }

// funcSearcher walks the [pos, limit) window rune by rune in either
// direction, yielding each rune the predicate accepts.
type funcSearcher struct {
	text  string
	pred  func(rune) bool
	pos   int
	limit int
}

func (s *funcSearcher) NextMatch() (int, int, bool) {
	for s.pos < s.limit {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:s.limit])
		start := s.pos
		s.pos += size
		if s.pred(r) {
			return start, start + size, true
		}
	}
	return 0, 0, false
}

func (s *funcSearcher) NextMatchBack() (int, int, bool) {
	for s.limit > s.pos {
		r, size := utf8.DecodeLastRuneInString(s.text[s.pos:s.limit])
		end := s.limit
		s.limit -= size
		if s.pred(r) {
			return end - size, end, true
		}
	}
	return 0, 0, false
}

func (s *funcSearcher) Clone() Searcher {
	c := *s
	return &c
}

// RuneSet matches any single code point from a fixed set.
//
// Membership of ASCII code points is a table lookup; the remainder use a
// map. The set is immutable after construction and may be shared by any
// number of searchers.
type RuneSet struct {
	ascii [128]bool
	rest  map[rune]struct{}
}

// NewRuneSet builds a set from the given code points. Invalid code points
// are ignored.
func NewRuneSet(runes ...rune) *RuneSet {
	s := &RuneSet{}
	for _, r := range runes {
		switch {
		case r < 0:
			// ignore
		case r < 128:
			s.ascii[r] = true
		case utf8.RuneLen(r) > 0:
			if s.rest == nil {
				s.rest = make(map[rune]struct{})
			}
			s.rest[r] = struct{}{}
		}
	}
	return s
}

// Contains reports whether r is in the set.
func (p *RuneSet) Contains(r rune) bool {
	if r >= 0 && r < 128 {
		return p.ascii[r]
	}
	_, ok := p.rest[r]
	return ok
}

// Searcher binds the set to text.
func (p *RuneSet) Searcher(text string) Searcher {
	return &funcSearcher{text: text, pred: p.Contains, limit: len(text)}
}

// PrefixIn reports whether text starts with a set member.
func (p *RuneSet) PrefixIn(text string) (int, bool) {
	return Func(p.Contains).PrefixIn(text)
}

// SuffixIn reports whether text ends with a set member.
func (p *RuneSet) SuffixIn(text string) (int, bool) {
	return Func(p.Contains).SuffixIn(text)
}

// MatchesEmpty always reports false.
func (p *RuneSet) MatchesEmpty() bool { return false }
