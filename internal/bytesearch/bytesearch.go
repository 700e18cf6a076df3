// Package bytesearch provides substring primitives over raw bytes.
//
// All functions here are validity-independent: they treat the haystack and
// needle as opaque byte sequences and never assume UTF-8 well-formedness.
// They back the existence-search operations of the public API (Contains,
// HasPrefix, HasSuffix) and the fast path of the literal pattern searcher.
//
// The forward search combines a rare-byte heuristic with SWAR (SIMD Within A
// Register) byte scanning: the candidate byte is located 8 bytes at a time
// using uint64 bitwise operations, then the full needle is verified at each
// candidate position.
package bytesearch

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// IndexByte returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Inputs of fewer than 8 bytes are scanned byte by byte; longer inputs use
// the SWAR zero-byte detection formula on 8-byte chunks.
func IndexByte(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := swarMask(needle)

	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if pos := swarFirstZero(chunk ^ mask); pos >= 0 {
			return i + pos
		}
	}

	// Final partial chunk: re-read the last 8 bytes (overlap is harmless,
	// earlier positions were already rejected).
	if i < n {
		chunk := binary.LittleEndian.Uint64(haystack[n-8:])
		if pos := swarFirstZero(chunk ^ mask); pos >= 0 {
			return n - 8 + pos
		}
	}
	return -1
}

// LastIndexByte returns the index of the last instance of needle in haystack,
// or -1 if needle is not present.
func LastIndexByte(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := n - 1; i >= 0; i-- {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := swarMask(needle)

	i := n
	for ; i-8 >= 0; i -= 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i-8:])
		if pos := swarLastZero(chunk ^ mask); pos >= 0 {
			return i - 8 + pos
		}
	}

	if i > 0 {
		chunk := binary.LittleEndian.Uint64(haystack[:8])
		if pos := swarLastZero(chunk ^ mask); pos >= 0 {
			return pos
		}
	}
	return -1
}

// Index returns the index of the first instance of needle in haystack, or -1
// if needle is not present.
//
// Algorithm: pick a probe byte of the needle (the last byte, which tends to
// be the most distinctive in natural text and patterns), locate candidates
// for it with IndexByte, and verify the full needle at each candidate.
func Index(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at the start, mirroring bytes.Index.
	if needleLen == 0 {
		return 0
	}
	if needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return IndexByte(haystack, needle[0])
	}

	probe, probeIdx := selectProbeByte(needle)

	searchStart := 0
	for {
		candidate := IndexByte(haystack[searchStart:], probe)
		if candidate == -1 {
			return -1
		}
		candidate += searchStart

		start := candidate - probeIdx
		if start >= 0 && start+needleLen <= haystackLen &&
			bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}

		searchStart = candidate + 1
		if searchStart >= haystackLen {
			return -1
		}
	}
}

// LastIndex returns the index of the last instance of needle in haystack, or
// -1 if needle is not present. An empty needle matches at len(haystack).
func LastIndex(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	if needleLen == 0 {
		return haystackLen
	}
	if needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return LastIndexByte(haystack, needle[0])
	}

	// Probe with the first byte when scanning backward: candidates are
	// needle start positions directly.
	probe := needle[0]

	searchEnd := haystackLen - needleLen + 1
	for {
		candidate := LastIndexByte(haystack[:searchEnd], probe)
		if candidate == -1 {
			return -1
		}
		if bytes.Equal(haystack[candidate:candidate+needleLen], needle) {
			return candidate
		}
		searchEnd = candidate
		if searchEnd == 0 {
			return -1
		}
	}
}

// Contains reports whether needle occurs as a contiguous byte run inside
// haystack. An empty needle is contained in every haystack.
func Contains(haystack, needle []byte) bool {
	return Index(haystack, needle) >= 0
}

// selectProbeByte returns the probe byte of needle and its index.
//
// The last byte is used as a heuristic: word endings and terminators are
// usually more distinctive than beginnings, and selecting it is O(1).
func selectProbeByte(needle []byte) (byte, int) {
	lastIdx := len(needle) - 1
	return needle[lastIdx], lastIdx
}

// swarMask replicates b into every byte of a uint64.
func swarMask(b byte) uint64 {
	return uint64(b) * 0x0101010101010101
}

// swarFirstZero returns the index of the lowest zero byte in v, or -1.
//
// Zero-byte detection: (v - 0x01..01) & ^v & 0x80..80 has the high bit set
// in every byte of v that is zero.
func swarFirstZero(v uint64) int {
	found := (v - 0x0101010101010101) & ^v & 0x8080808080808080
	if found == 0 {
		return -1
	}
	return bits.TrailingZeros64(found) >> 3
}

// swarLastZero returns the index of the highest zero byte in v, or -1.
//
// The detection formula only guarantees its lowest flagged byte is a true
// zero (the borrow out of a zero byte can flag the bytes above it), so the
// highest zero is found by byte-reversing v and taking the lowest flag.
func swarLastZero(v uint64) int {
	pos := swarFirstZero(bits.ReverseBytes64(v))
	if pos < 0 {
		return -1
	}
	return 7 - pos
}
