package osbytes

import (
	"runtime"
	"unicode/utf8"

	"github.com/coregx/osbytes/wtf8"
)

// Encoding is the platform strategy for representing native strings as
// bytes. Two implementations exist: Raw for POSIX-like platforms, where any
// byte sequence is a native string, and Wide for platforms whose native
// strings are 16-bit units, represented here as WTF-8 bytes.
//
// The pattern, section, and split machinery is encoding-agnostic: it is
// defined purely in terms of "is this byte range valid UTF-8", which is
// correct for raw bytes directly and treats WTF-8's encoded lone surrogates
// as invalid runs, exactly as the platform exposes them.
type Encoding interface {
	// Name identifies the encoding ("raw" or "wide").
	Name() string

	// FromBytes adopts raw bytes as an owned native string. It reports
	// false when the bytes are not representable: never for Raw, and for
	// Wide whenever the bytes are not valid UTF-8.
	FromBytes(b []byte) (String, bool)

	// RawBytes extracts the byte content of a view as plain UTF-8-or-bust
	// data. It reports false when the content is not representable: never
	// for Raw, and for Wide whenever the view is not fully valid UTF-8.
	RawBytes(s Str) ([]byte, bool)

	// appendSlice concatenates src onto dst preserving the encoding's
	// well-formedness (WTF-8 joins surrogate halves at the seam).
	appendSlice(dst, src []byte) []byte
}

// Raw is the POSIX-like encoding: native strings are arbitrary byte
// sequences, adopted and extracted without inspection.
var Raw Encoding = rawEncoding{}

// Wide is the wide-character-native encoding: native strings are 16-bit
// unit sequences held as WTF-8 bytes.
var Wide Encoding = wideEncoding{}

// Native returns the encoding of the current platform.
func Native() Encoding {
	if runtime.GOOS == "windows" {
		return Wide
	}
	return Raw
}

type rawEncoding struct{}

func (rawEncoding) Name() string { return "raw" }

func (rawEncoding) FromBytes(b []byte) (String, bool) {
	buf := make([]byte, len(b))
	copy(buf, b)
	return String{enc: Raw, buf: buf}, true
}

func (rawEncoding) RawBytes(s Str) ([]byte, bool) {
	out := make([]byte, len(s.raw))
	copy(out, s.raw)
	return out, true
}

func (rawEncoding) appendSlice(dst, src []byte) []byte {
	return append(dst, src...)
}

type wideEncoding struct{}

func (wideEncoding) Name() string { return "wide" }

func (wideEncoding) FromBytes(b []byte) (String, bool) {
	if !utf8.Valid(b) {
		return String{}, false
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	return String{enc: Wide, buf: buf}, true
}

func (wideEncoding) RawBytes(s Str) ([]byte, bool) {
	if !utf8.Valid(s.raw) {
		return nil, false
	}
	out := make([]byte, len(s.raw))
	copy(out, s.raw)
	return out, true
}

func (wideEncoding) appendSlice(dst, src []byte) []byte {
	return wtf8.Append(dst, src)
}

// FromWide builds an owned native string from wide units, losslessly: lone
// surrogates survive the round trip. The result always uses the Wide
// encoding.
func FromWide(w []uint16) String {
	return String{enc: Wide, buf: wtf8.EncodeWide(w)}
}

// ToWide converts a view's WTF-8 bytes back to wide units. It is the inverse
// of FromWide for strings built by this package; bytes that are neither
// valid UTF-8 nor encoded surrogates convert to one U+FFFD unit each.
func ToWide(s Str) []uint16 {
	return wtf8.DecodeWide(s.raw)
}

// RawBytes extracts the byte content of s under the current platform's
// encoding. See Encoding.RawBytes.
func RawBytes(s Str) ([]byte, bool) {
	return Native().RawBytes(s)
}

// FromBytes adopts raw bytes as an owned native string under the current
// platform's encoding. See Encoding.FromBytes.
func FromBytes(b []byte) (String, bool) {
	return Native().FromBytes(b)
}
