// Package wtf8 implements the WTF-8 encoding: a superset of UTF-8 that can
// also encode unpaired UTF-16 surrogate code units.
//
// Platforms whose native strings are sequences of arbitrary 16-bit units
// (interpreted as UTF-16 when possible) cannot always be represented as
// UTF-8: a lone surrogate has no UTF-8 encoding. WTF-8 closes the gap by
// encoding lone surrogates in the ordinary 3-byte form, so any native wide
// string round-trips losslessly through bytes.
//
// The encodings of lone surrogates are, deliberately, invalid UTF-8. The
// section partitioner therefore already treats them as invalid runs with no
// special handling, which matches the platform behavior of exposing no valid
// text at those positions.
package wtf8

import "unicode/utf8"

const (
	surr1    = 0xD800 // high surrogates: [surr1, surr2)
	surr2    = 0xDC00 // low surrogates: [surr2, surr3)
	surr3    = 0xE000
	surrSelf = 0x10000 // code points above the BMP encode as a pair
)

// EncodeWide encodes a native wide string as WTF-8 bytes. Well-formed
// surrogate pairs become a single 4-byte code point; lone surrogates are
// encoded in the 3-byte form. The conversion is lossless: DecodeWide
// inverts it exactly.
func EncodeWide(w []uint16) []byte {
	b := make([]byte, 0, len(w))
	for i := 0; i < len(w); i++ {
		u := rune(w[i])
		switch {
		case u < surr1 || u >= surr3:
			b = utf8.AppendRune(b, u)
		case u < surr2 && i+1 < len(w) && rune(w[i+1]) >= surr2 && rune(w[i+1]) < surr3:
			r := surrSelf + (u-surr1)<<10 + (rune(w[i+1]) - surr2)
			b = utf8.AppendRune(b, r)
			i++
		default:
			b = appendSurrogate(b, u)
		}
	}
	return b
}

// DecodeWide decodes WTF-8 bytes back to a native wide string. Supplementary
// code points become surrogate pairs; encoded lone surrogates become lone
// units. Bytes that are neither valid UTF-8 nor an encoded surrogate decode
// as one U+FFFD each.
func DecodeWide(b []byte) []uint16 {
	w := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		r, size := decodePoint(b[i:])
		i += size
		if r >= surrSelf {
			w = append(w, uint16(surr1+(r-surrSelf)>>10), uint16(surr2+(r-surrSelf)&0x3FF))
		} else {
			w = append(w, uint16(r))
		}
	}
	return w
}

// IsValid reports whether b is well-formed WTF-8: valid UTF-8 extended with
// 3-byte encodings of lone surrogates. An encoded high surrogate directly
// followed by an encoded low surrogate is ill-formed (the pair must have
// been combined into one supplementary code point).
func IsValid(b []byte) bool {
	prevHigh := false
	for i := 0; i < len(b); {
		r, size, ok := decodePointStrict(b[i:])
		if !ok {
			return false
		}
		high := r >= surr1 && r < surr2
		low := r >= surr2 && r < surr3
		if prevHigh && low {
			return false
		}
		prevHigh = high
		i += size
	}
	return true
}

// Append concatenates two WTF-8 byte strings, preserving well-formedness:
// when dst ends with an encoded high surrogate and src begins with an
// encoded low surrogate, the pair is joined into one supplementary code
// point at the seam.
func Append(dst, src []byte) []byte {
	if hi, ok := trailingHighSurrogate(dst); ok {
		if lo, ok := leadingLowSurrogate(src); ok {
			r := surrSelf + (hi-surr1)<<10 + (lo - surr2)
			dst = utf8.AppendRune(dst[:len(dst)-3], r)
			return append(dst, src[3:]...)
		}
	}
	return append(dst, src...)
}

// appendSurrogate writes the 3-byte encoding of a surrogate code point,
// which utf8.AppendRune refuses to produce.
func appendSurrogate(b []byte, r rune) []byte {
	return append(b,
		byte(0xE0|r>>12),
		byte(0x80|r>>6&0x3F),
		byte(0x80|r&0x3F),
	)
}

// decodePoint decodes the first code point of b, accepting encoded
// surrogates. Ill-formed input decodes as (U+FFFD, 1).
func decodePoint(b []byte) (rune, int) {
	r, size, ok := decodePointStrict(b)
	if !ok {
		return utf8.RuneError, 1
	}
	return r, size
}

// decodePointStrict decodes the first code point of b, accepting encoded
// surrogates, and reports whether the encoding was well-formed.
func decodePointStrict(b []byte) (rune, int, bool) {
	r, size := utf8.DecodeRune(b)
	if !(r == utf8.RuneError && size <= 1) {
		return r, size, true
	}
	if isSurrogateEncoding(b) {
		r = rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
		return r, 3, true
	}
	return 0, 0, false
}

// isSurrogateEncoding reports whether b begins with the 3-byte encoding of
// a surrogate code point (ED A0..BF 80..BF).
func isSurrogateEncoding(b []byte) bool {
	return len(b) >= 3 &&
		b[0] == 0xED &&
		b[1] >= 0xA0 && b[1] <= 0xBF &&
		b[2] >= 0x80 && b[2] <= 0xBF
}

// trailingHighSurrogate decodes an encoded high surrogate at the end of b.
func trailingHighSurrogate(b []byte) (rune, bool) {
	n := len(b)
	if n < 3 {
		return 0, false
	}
	tail := b[n-3:]
	if tail[0] == 0xED && tail[1] >= 0xA0 && tail[1] <= 0xAF && tail[2] >= 0x80 && tail[2] <= 0xBF {
		return rune(tail[0]&0x0F)<<12 | rune(tail[1]&0x3F)<<6 | rune(tail[2]&0x3F), true
	}
	return 0, false
}

// leadingLowSurrogate decodes an encoded low surrogate at the start of b.
func leadingLowSurrogate(b []byte) (rune, bool) {
	if isSurrogateEncoding(b) && b[1] >= 0xB0 {
		return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), true
	}
	return 0, false
}
