package wtf8

import (
	"bytes"
	"reflect"
	"testing"
	"unicode/utf16"
	"unicode/utf8"
)

func TestEncodeWide(t *testing.T) {
	tests := []struct {
		name string
		in   []uint16
		want string
	}{
		{"empty", nil, ""},
		{"ascii", []uint16{'h', 'i'}, "hi"},
		{"bmp", []uint16{0x65E5, 0x672C}, "日本"},
		{"surrogate pair", []uint16{0xD83D, 0xDE00}, "\U0001F600"},
		{"lone high surrogate", []uint16{0xD800}, "\xed\xa0\x80"},
		{"lone low surrogate", []uint16{0xDC00}, "\xed\xb0\x80"},
		{"high at end of input", []uint16{'a', 0xD800}, "a\xed\xa0\x80"},
		{"high before non-low", []uint16{0xD800, 'a'}, "\xed\xa0\x80a"},
		{"low before high", []uint16{0xDC00, 0xD800}, "\xed\xb0\x80\xed\xa0\x80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeWide(tt.in); !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("EncodeWide(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := [][]uint16{
		nil,
		{'h', 'e', 'l', 'l', 'o'},
		{0xD83D, 0xDE00},       // paired
		{0xD800},               // lone high
		{0xDC00},               // lone low
		{0xDC00, 0xD800},       // reversed pair stays two lone units
		{'a', 0xD800, 'b'},     // lone high between text
		{0xD800, 0xD800},       // two lone highs
		{0xFFFF, 0x0000, 'x'},  // BMP edge values
		{0xD7FF, 0xE000},       // code points adjacent to the surrogate range
	}
	for _, in := range tests {
		got := DecodeWide(EncodeWide(in))
		want := in
		if len(want) == 0 {
			want = []uint16{}
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("DecodeWide(EncodeWide(%v)) = %v", in, got)
		}
	}
}

func TestEncodeWideMatchesUTF16ForValidInput(t *testing.T) {
	// For well-formed UTF-16 (no lone surrogates) WTF-8 equals UTF-8.
	for _, text := range []string{"", "hello", "héllo", "日本語", "\U0001F600 ok"} {
		units := utf16.Encode([]rune(text))
		if got := EncodeWide(units); string(got) != text {
			t.Errorf("EncodeWide(%q units) = %q", text, got)
		}
	}
}

func TestDecodeWideIllFormedBytes(t *testing.T) {
	// Bytes that are neither UTF-8 nor an encoded surrogate become one
	// U+FFFD unit each.
	got := DecodeWide([]byte("a\xffb"))
	want := []uint16{'a', 0xFFFD, 'b'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeWide = %v, want %v", got, want)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", true},
		{"plain utf8", "héllo", true},
		{"lone high surrogate", "\xed\xa0\x80", true},
		{"lone low surrogate", "\xed\xb0\x80", true},
		{"low then high", "\xed\xb0\x80\xed\xa0\x80", true},
		// An encoded high directly followed by an encoded low must have
		// been combined into one supplementary code point.
		{"adjacent high low", "\xed\xa0\x80\xed\xb0\x80", false},
		{"garbage", "\xff", false},
		{"truncated sequence", "\xe2\x82", false},
		{"text around lone surrogate", "a\xed\xa0\x80b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid([]byte(tt.in)); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAppendJoinsSurrogateHalves(t *testing.T) {
	high := EncodeWide([]uint16{0xD83D}) // lone high
	low := EncodeWide([]uint16{0xDE00})  // lone low

	got := Append(append([]byte(nil), high...), low)
	want := []byte("\U0001F600")
	if !bytes.Equal(got, want) {
		t.Errorf("Append(high, low) = %q, want %q", got, want)
	}

	// The joined result is plain valid UTF-8.
	if !utf8.Valid(got) {
		t.Error("joined pair is not valid UTF-8")
	}

	// Prefixes and suffixes around the seam survive.
	got = Append(append([]byte("x"), high...), append(append([]byte(nil), low...), 'y'))
	want = []byte("x\U0001F600y")
	if !bytes.Equal(got, want) {
		t.Errorf("Append with context = %q, want %q", got, want)
	}
}

func TestAppendNoJoin(t *testing.T) {
	high := EncodeWide([]uint16{0xD800})
	low := EncodeWide([]uint16{0xDC00})

	tests := []struct {
		name     string
		dst, src []byte
		want     []byte
	}{
		{"plain concat", []byte("ab"), []byte("cd"), []byte("abcd")},
		{"high then text", high, []byte("x"), append(append([]byte(nil), high...), 'x')},
		{"text then low", []byte("x"), low, append([]byte("x"), low...)},
		{"low then high", low, high, append(append([]byte(nil), low...), high...)},
		{"empty dst", nil, low, low},
		{"empty src", high, nil, high},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Append(append([]byte(nil), tt.dst...), tt.src)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Append = %q, want %q", got, tt.want)
			}
		})
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{0x00, 0xD8})             // lone high, little-endian pairs
	f.Add([]byte{0x3D, 0xD8, 0x00, 0xDE}) // valid pair
	f.Add([]byte("hello"))

	f.Fuzz(func(t *testing.T, raw []byte) {
		// Interpret the fuzz input as 16-bit units.
		units := make([]uint16, 0, len(raw)/2)
		for i := 0; i+1 < len(raw); i += 2 {
			units = append(units, uint16(raw[i])|uint16(raw[i+1])<<8)
		}

		encoded := EncodeWide(units)
		if !IsValid(encoded) {
			t.Fatalf("EncodeWide(%v) produced ill-formed WTF-8 %q", units, encoded)
		}
		decoded := DecodeWide(encoded)
		if len(units) == 0 {
			units = []uint16{}
		}
		if !reflect.DeepEqual(decoded, units) {
			t.Errorf("round trip %v -> %q -> %v", units, encoded, decoded)
		}
	})
}
