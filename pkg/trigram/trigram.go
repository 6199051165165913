package trigram

import (
	"regexp"
	"unicode/utf8"
)

// wordRe matches maximal runs of Unicode letters and digits. Everything
// else, including dash variants and other punctuation, is a separator.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Trigram is the compact 3-byte key stored for one 3-character window.
// Windows that encode to exactly 3 bytes keep those bytes verbatim; wider
// windows are compressed through the legacy CRC32 (see compact).
type Trigram [3]byte

// Set holds the unique trigrams of one input string. It is built once per
// call and never mutated afterwards, so concurrent reads need no locking.
type Set map[Trigram]struct{}

// Contains reports whether t is a member of the set.
func (s Set) Contains(t Trigram) bool {
	_, ok := s[t]
	return ok
}

// Extract builds the trigram set for text: normalize, find word runs, pad
// each run with two leading and one trailing space, then encode every
// consecutive 3-rune window. Text without any word characters yields an
// empty set.
func Extract(text string) Set {
	normalized := downcase(text)

	// bytes/3 avoids over-allocating for multi-byte scripts while still
	// sizing well for ASCII
	capacity := len(normalized) / 3
	if capacity < 16 {
		capacity = 16
	}
	set := make(Set, capacity)

	buf := make([]rune, 0, 64)
	for _, word := range wordRe.FindAllString(normalized, -1) {
		buf = buf[:0]
		buf = append(buf, ' ', ' ')
		for _, r := range word {
			buf = append(buf, r)
		}
		buf = append(buf, ' ')

		for i := 0; i+3 <= len(buf); i++ {
			set[compact(buf[i], buf[i+1], buf[i+2])] = struct{}{}
		}
	}
	return set
}

// compact encodes three runes into a Trigram. A window of three single-byte
// runes keeps its raw bytes; anything wider keeps the low three bytes,
// little endian, of the legacy CRC32 over the full UTF-8 encoding. The two
// paths can collide; pg_trgm behaves the same way and the collision is
// accepted, not worked around.
func compact(a, b, c rune) Trigram {
	var enc [3 * utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], a)
	n += utf8.EncodeRune(enc[n:], b)
	n += utf8.EncodeRune(enc[n:], c)

	if n == 3 {
		return Trigram{enc[0], enc[1], enc[2]}
	}
	crc := legacyCRC32(enc[:n])
	return Trigram{byte(crc), byte(crc >> 8), byte(crc >> 16)}
}
