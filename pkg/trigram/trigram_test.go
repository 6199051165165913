package trigram

import "testing"

// "hello" pads to "  hello " and yields 6 windows:
// "  h", " he", "hel", "ell", "llo", "lo "
func TestExtractBasic(t *testing.T) {
	set := Extract("hello")
	if len(set) != 6 {
		t.Errorf("Expected 6 trigrams for 'hello', got %d", len(set))
	}
	for _, want := range []string{"  h", " he", "hel", "ell", "llo", "lo "} {
		tri := Trigram{want[0], want[1], want[2]}
		if !set.Contains(tri) {
			t.Errorf("Expected trigram %q in set", want)
		}
	}
}

func TestExtractDegenerate(t *testing.T) {
	testCases := []struct {
		input       string
		count       int
		description string
	}{
		{"", 0, "Empty string"},
		{"   ", 0, "Whitespace only"},
		{"!!! -- ...", 0, "Punctuation only"},
		{"a", 2, "Single char pads to '  a ' giving 2 windows"},
		{"ab", 3, "Two chars give 3 windows"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			set := Extract(tc.input)
			if len(set) != tc.count {
				t.Errorf("Input %q: expected %d trigrams, got %d", tc.input, tc.count, len(set))
			}
		})
	}
}

// separators reset the window, so each word run is trigrammed on its own
func TestExtractWordRuns(t *testing.T) {
	split := Extract("foo bar")
	// underscore is not a word character, unlike \w
	if got := Extract("foo_bar"); len(got) != len(split) {
		t.Errorf("Expected '_' to separate runs: %d vs %d trigrams", len(got), len(split))
	}
	// the trigram set is identical whatever the separator is
	variants := []string{"foo-bar", "foo—bar", "foo...bar", "foo\tbar", "foo   bar"}
	for _, v := range variants {
		got := Extract(v)
		if len(got) != len(split) {
			t.Errorf("Extract(%q) has %d trigrams, want %d", v, len(got), len(split))
		}
		for tri := range split {
			if !got.Contains(tri) {
				t.Errorf("Extract(%q) missing trigram %v", v, tri)
			}
		}
	}
}

// İ lowercases with a trailing combining dot above, which normalization
// strips, so the two spellings must produce set-equal trigrams
func TestExtractTurkishDottedI(t *testing.T) {
	set1 := Extract("İstanbul")
	set2 := Extract("istanbul")
	if len(set1) != len(set2) {
		t.Fatalf("Set sizes differ: %d vs %d", len(set1), len(set2))
	}
	for tri := range set1 {
		if !set2.Contains(tri) {
			t.Errorf("Trigram %v missing from plain spelling", tri)
		}
	}
}

func TestDowncase(t *testing.T) {
	testCases := []struct {
		input       string
		expected    string
		description string
	}{
		{"Hello", "hello", "Plain ASCII"},
		{"WORLD", "world", "All caps"},
		{"Café", "café", "Accent preserved"},
		{"i̇", "i", "Existing combining dot above removed"},
		{"ΣΟΦΟΣ", "σοφοσ", "Greek sigma, context-free"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := downcase(tc.input); got != tc.expected {
				t.Errorf("downcase(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCompactASCII(t *testing.T) {
	got := compact('a', 'b', 'c')
	want := Trigram{'a', 'b', 'c'}
	if got != want {
		t.Errorf("compact('a','b','c') = %v, want %v", got, want)
	}
}

// multi-byte windows go through the checksum, not raw bytes
func TestCompactMultiByte(t *testing.T) {
	got := compact('é', 'é', 'é')
	if got == (Trigram{0xC3, 0xA9, 0xC3}) {
		t.Error("Multi-byte window must not keep truncated raw bytes")
	}
	// deterministic across calls
	if again := compact('é', 'é', 'é'); again != got {
		t.Errorf("compact not deterministic: %v vs %v", got, again)
	}
}
