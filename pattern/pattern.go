// Package pattern defines the textual patterns understood by the matching
// engine and the per-section search engines they produce.
//
// A Pattern is a factory: binding it to one section's text yields a Searcher,
// a small stateful engine that enumerates the pattern's matches within that
// text only. The match driver binds a fresh Searcher to every section it
// visits; a Searcher never outlives its section's text.
//
// Every Searcher owns a [pos, limit) window over its text. Forward matches
// advance pos, backward matches retreat limit, so interleaved consumption
// from both ends converges in the middle without duplicating or overlapping
// matches. This replaces the pair of mirror-image forward/reverse engine
// types with a single state machine per pattern kind.
//
// Available patterns:
//
//	Literal("::")          substring
//	Rune('/')              single code point
//	Func(unicode.IsSpace)  code-point predicate
//	NewRuneSet('a', 'b')   small code-point set with ASCII fast path
//	NewAnyOf("a", "bc")    multi-literal set (Aho-Corasick)
package pattern

// Searcher is a search engine instance bound to one section's text.
//
// NextMatch returns the next forward match as half-open [start, end) offsets
// local to the bound text, or ok == false once the forward stream is
// exhausted. Implementations must be non-overlapping and strictly advancing.
type Searcher interface {
	NextMatch() (start, end int, ok bool)

	// Clone returns an independent copy. The copy and the original yield
	// identical remaining match streams.
	Clone() Searcher
}

// ReverseSearcher is a Searcher that can also enumerate matches from the
// back of its text. All patterns in this package produce ReverseSearchers;
// the interface exists so that third-party forward-only patterns can still
// participate in forward matching.
type ReverseSearcher interface {
	Searcher
	NextMatchBack() (start, end int, ok bool)
}

// Pattern is a textual matcher that can be bound to a text span.
type Pattern interface {
	// Searcher binds the pattern to text, returning a fresh engine
	// positioned at the start.
	Searcher(text string) Searcher

	// PrefixIn reports whether the pattern matches a prefix of text,
	// returning the matched length.
	PrefixIn(text string) (n int, ok bool)

	// SuffixIn reports whether the pattern matches a suffix of text,
	// returning the matched length.
	SuffixIn(text string) (n int, ok bool)

	// MatchesEmpty reports whether the pattern can match the empty string.
	// Such patterns produce a zero-width match at every position; split
	// callers use this to anticipate the resulting piece stream.
	MatchesEmpty() bool
}

// Reversible reports whether p produces searchers that support backward
// iteration. Backward operations (RSplit, RMatches and friends) panic on
// patterns that do not.
func Reversible(p Pattern) bool {
	_, ok := p.Searcher("").(ReverseSearcher)
	return ok
}
