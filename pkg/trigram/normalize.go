package trigram

import "unicode"

// combiningDotAbove shows up when certain characters are lowercased, most
// notably U+0130 (Turkish dotted capital I). pg_trgm drops it after
// downcasing so that "İstanbul" and "istanbul" normalize identically.
const combiningDotAbove = '̇'

// downcase lowercases text rune by rune and removes every combining dot
// above, in that order. No other normalization happens here: accented
// letters stay distinct from their plain forms.
func downcase(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		r = unicode.ToLower(r)
		if r == combiningDotAbove {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
