package pattern

import (
	"reflect"
	"testing"
	"unicode"
)

type matchSpan struct {
	start, end int
}

// forward drains a searcher front to back.
func forward(s Searcher) []matchSpan {
	var out []matchSpan
	for {
		start, end, ok := s.NextMatch()
		if !ok {
			return out
		}
		out = append(out, matchSpan{start, end})
	}
}

// backward drains a searcher back to front.
func backward(s Searcher) []matchSpan {
	rev := s.(ReverseSearcher)
	var out []matchSpan
	for {
		start, end, ok := rev.NextMatchBack()
		if !ok {
			return out
		}
		out = append(out, matchSpan{start, end})
	}
}

func reversedSpans(spans []matchSpan) []matchSpan {
	if len(spans) == 0 {
		return nil
	}
	out := make([]matchSpan, len(spans))
	for i, s := range spans {
		out[len(spans)-1-i] = s
	}
	return out
}

// checkSearcher verifies that pattern p yields the expected spans over text,
// in both directions, and that clones replay the remaining stream.
func checkSearcher(t *testing.T, p Pattern, text string, want []matchSpan) {
	t.Helper()

	if got := forward(p.Searcher(text)); !reflect.DeepEqual(got, want) {
		t.Errorf("forward(%q) = %v, want %v", text, got, want)
	}
	if got := backward(p.Searcher(text)); !reflect.DeepEqual(reversedSpans(got), want) {
		t.Errorf("backward(%q) = %v, want %v (reversed)", text, got, want)
	}

	// A clone taken mid-stream yields the same remainder as the original.
	s := p.Searcher(text)
	s.NextMatch()
	c := s.Clone()
	if got, want := forward(c), forward(s); !reflect.DeepEqual(got, want) {
		t.Errorf("clone(%q) = %v, original remainder %v", text, got, want)
	}
}

func TestLiteralSearcher(t *testing.T) {
	tests := []struct {
		needle string
		text   string
		want   []matchSpan
	}{
		{"l", "hello", []matchSpan{{2, 3}, {3, 4}}},
		{"ll", "hello", []matchSpan{{2, 4}}},
		{"hello", "hello", []matchSpan{{0, 5}}},
		{"x", "hello", nil},
		{"ab", "ababab", []matchSpan{{0, 2}, {2, 4}, {4, 6}}},
		// Non-overlapping: "aa" in "aaa" matches once from the front.
		{"é", "café café", []matchSpan{{3, 5}, {9, 11}}},
		{"a", "", nil},
	}
	for _, tt := range tests {
		checkSearcher(t, Literal(tt.needle), tt.text, tt.want)
	}
}

func TestLiteralSelfOverlap(t *testing.T) {
	// Self-overlapping needles resolve differently per direction; each
	// direction independently yields non-overlapping matches.
	s := Literal("aa").Searcher("aaa")
	if got := forward(s); !reflect.DeepEqual(got, []matchSpan{{0, 2}}) {
		t.Errorf("forward = %v, want [{0 2}]", got)
	}
	s = Literal("aa").Searcher("aaa")
	if got := backward(s); !reflect.DeepEqual(got, []matchSpan{{1, 3}}) {
		t.Errorf("backward = %v, want [{1 3}]", got)
	}
}

func TestEmptyLiteral(t *testing.T) {
	// The empty literal matches at every rune boundary, both ends included.
	checkSearcher(t, Literal(""), "abc", []matchSpan{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	checkSearcher(t, Literal(""), "", []matchSpan{{0, 0}})
	// Boundaries are rune boundaries, not byte boundaries.
	checkSearcher(t, Literal(""), "aé", []matchSpan{{0, 0}, {1, 1}, {3, 3}})
}

func TestInterleavedWindowConvergence(t *testing.T) {
	// Consuming the same searcher from both ends partitions the match set:
	// no duplicates, no omissions.
	s := Literal("a").Searcher("a.a.a.a")
	got := []matchSpan{}

	start, end, ok := s.NextMatch()
	if !ok {
		t.Fatal("first NextMatch failed")
	}
	got = append(got, matchSpan{start, end})

	rev := s.(ReverseSearcher)
	for {
		start, end, ok := rev.NextMatchBack()
		if !ok {
			break
		}
		got = append(got, matchSpan{start, end})
	}
	if _, _, ok := s.NextMatch(); ok {
		t.Error("forward stream not exhausted after backward drained the window")
	}

	want := []matchSpan{{0, 1}, {6, 7}, {4, 5}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("interleaved = %v, want %v", got, want)
	}
}

func TestEmptyLiteralInterleaved(t *testing.T) {
	// Zero-width boundaries are also consumed exactly once across
	// directions.
	s := Literal("").Searcher("ab")
	rev := s.(ReverseSearcher)

	var got []matchSpan
	start, end, _ := s.NextMatch() // boundary 0
	got = append(got, matchSpan{start, end})
	start, end, _ = rev.NextMatchBack() // boundary 2
	got = append(got, matchSpan{start, end})
	start, end, _ = s.NextMatch() // boundary 1, the rendezvous
	got = append(got, matchSpan{start, end})

	want := []matchSpan{{0, 0}, {2, 2}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("interleaved = %v, want %v", got, want)
	}
	if _, _, ok := s.NextMatch(); ok {
		t.Error("forward yielded a boundary twice")
	}
	if _, _, ok := rev.NextMatchBack(); ok {
		t.Error("backward yielded a boundary twice")
	}
}

func TestRuneSearcher(t *testing.T) {
	checkSearcher(t, Rune('l'), "hello", []matchSpan{{2, 3}, {3, 4}})
	checkSearcher(t, Rune('é'), "café", []matchSpan{{3, 5}})
	checkSearcher(t, Rune('x'), "hello", nil)
	// An invalid code point never matches.
	checkSearcher(t, Rune(0xD800), "hello", nil)
	checkSearcher(t, Rune(-1), "hello", nil)
}

func TestFuncSearcher(t *testing.T) {
	checkSearcher(t, Func(unicode.IsSpace), "a b\tc", []matchSpan{{1, 2}, {3, 4}})
	checkSearcher(t, Func(unicode.IsDigit), "abc", nil)
	checkSearcher(t, Func(unicode.IsLetter), "héllo", []matchSpan{{0, 1}, {1, 3}, {3, 4}, {4, 5}, {5, 6}})
}

func TestRuneSet(t *testing.T) {
	set := NewRuneSet('a', 'é', '日')
	if !set.Contains('a') || !set.Contains('é') || !set.Contains('日') {
		t.Error("Contains misses a member")
	}
	if set.Contains('b') || set.Contains('e') {
		t.Error("Contains reports a non-member")
	}

	checkSearcher(t, set, "ba日b", []matchSpan{{1, 2}, {2, 5}})

	// Invalid code points are dropped at construction.
	bad := NewRuneSet(-5, 0xDFFF)
	checkSearcher(t, bad, "abc", nil)
}

func TestPrefixSuffix(t *testing.T) {
	tests := []struct {
		name    string
		p       Pattern
		text    string
		wantN   int
		wantOK  bool
		suffixN int
		suffix  bool
	}{
		{"literal hit", Literal("he"), "hello", 2, true, 0, false},
		{"literal suffix", Literal("lo"), "hello", 0, false, 2, true},
		{"literal both", Literal(""), "hello", 0, true, 0, true},
		{"rune", Rune('h'), "hello", 1, true, 0, false},
		{"rune multibyte", Rune('é'), "éclair café", 2, true, 2, true},
		{"func", Func(unicode.IsLetter), "a1z", 1, true, 1, true},
		{"func miss", Func(unicode.IsDigit), "a1z", 0, false, 0, false},
		{"empty text", Rune('a'), "", 0, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := tt.p.PrefixIn(tt.text)
			if n != tt.wantN || ok != tt.wantOK {
				t.Errorf("PrefixIn(%q) = (%d, %v), want (%d, %v)", tt.text, n, ok, tt.wantN, tt.wantOK)
			}
			n, ok = tt.p.SuffixIn(tt.text)
			if n != tt.suffixN || ok != tt.suffix {
				t.Errorf("SuffixIn(%q) = (%d, %v), want (%d, %v)", tt.text, n, ok, tt.suffixN, tt.suffix)
			}
		})
	}
}

func TestMatchesEmpty(t *testing.T) {
	if !Literal("").MatchesEmpty() {
		t.Error("Literal(\"\") should match empty")
	}
	for _, p := range []Pattern{Literal("a"), Rune('a'), Func(unicode.IsSpace), NewRuneSet('a')} {
		if p.MatchesEmpty() {
			t.Errorf("%T claims to match empty", p)
		}
	}
}

func TestReversible(t *testing.T) {
	pats := []Pattern{Literal("a"), Literal(""), Rune('x'), Func(unicode.IsSpace), NewRuneSet('a'), MustAnyOf("ab")}
	for _, p := range pats {
		if !Reversible(p) {
			t.Errorf("%T should be reversible", p)
		}
	}
}
