package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/osbytes/internal/conv"
)

// ErrEmptyAlternative is returned by NewAnyOf when one of the alternatives
// is the empty string. Zero-width alternatives would shadow every other
// alternative at every position; callers wanting zero-width matching should
// use Literal("") directly.
var ErrEmptyAlternative = errors.New("pattern: empty alternative in AnyOf")

// BuildError wraps a failure to construct the multi-literal automaton.
type BuildError struct {
	Err error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("pattern: building AnyOf automaton: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error { return e.Err }

// AnyOf matches the leftmost occurrence of any of a fixed set of literal
// alternatives, scanning each section once with an Aho-Corasick automaton.
//
// Matches are non-overlapping: after a match the scan resumes past its end.
type AnyOf struct {
	auto *ahocorasick.Automaton
	lits []string
}

// NewAnyOf builds an AnyOf pattern from the given alternatives. At least one
// alternative is required and none may be empty.
func NewAnyOf(lits ...string) (*AnyOf, error) {
	if len(lits) == 0 {
		return nil, &BuildError{Err: errors.New("no alternatives")}
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		if lit == "" {
			return nil, ErrEmptyAlternative
		}
		builder.AddPattern(conv.Bytes(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, &BuildError{Err: err}
	}
	return &AnyOf{auto: auto, lits: append([]string(nil), lits...)}, nil
}

// MustAnyOf is like NewAnyOf but panics on failure. Useful for alternative
// sets known to be valid at compile time.
func MustAnyOf(lits ...string) *AnyOf {
	p, err := NewAnyOf(lits...)
	if err != nil {
		panic(err)
	}
	return p
}

// Searcher binds the pattern to text.
//
// The automaton scans the section text eagerly at bind time; the resulting
// match list is shared by all clones of the searcher. Laziness across the
// whole buffer is preserved because the match driver binds searchers one
// section at a time.
func (p *AnyOf) Searcher(text string) Searcher {
	var spans []span
	haystack := conv.Bytes(text)
	at := 0
	for at < len(haystack) {
		m := p.auto.Find(haystack, at)
		if m == nil {
			break
		}
		spans = append(spans, span{m.Start, m.End})
		at = m.End
	}
	return &spanSearcher{spans: spans, back: len(spans)}
}

// PrefixIn reports whether any alternative is a prefix of text. When several
// are, the longest match wins.
func (p *AnyOf) PrefixIn(text string) (int, bool) {
	best := -1
	for _, lit := range p.lits {
		if len(lit) > best && strings.HasPrefix(text, lit) {
			best = len(lit)
		}
	}
	return best, best >= 0
}

// SuffixIn reports whether any alternative is a suffix of text. When several
// are, the longest match wins.
func (p *AnyOf) SuffixIn(text string) (int, bool) {
	best := -1
	for _, lit := range p.lits {
		if len(lit) > best && strings.HasSuffix(text, lit) {
			best = len(lit)
		}
	}
	return best, best >= 0
}

// MatchesEmpty always reports false: empty alternatives are rejected at
// construction.
func (p *AnyOf) MatchesEmpty() bool { return false }

// span is a half-open match range local to one section's text.
type span struct {
	start, end int
}

// spanSearcher serves a precomputed match list from both ends, converging in
// the middle. The list is immutable and shared between clones.
type spanSearcher struct {
	spans []span
	front int
	back  int
}

func (s *spanSearcher) NextMatch() (int, int, bool) {
	if s.front >= s.back {
		return 0, 0, false
	}
	m := s.spans[s.front]
	s.front++
	return m.start, m.end, true
}

func (s *spanSearcher) NextMatchBack() (int, int, bool) {
	if s.back <= s.front {
		return 0, 0, false
	}
	s.back--
	m := s.spans[s.back]
	return m.start, m.end, true
}

func (s *spanSearcher) Clone() Searcher {
	c := *s
	return &c
}
