package tokenizer

import "testing"

func TestWordScanner(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		expect []string
	}{
		{name: "single spaces", text: "अअब अब", expect: []string{"अअब", "अब"}},
		{name: "leading and trailing space", text: "  कख  ", expect: []string{"कख"}},
		{name: "mixed whitespace", text: "क\tख\nग", expect: []string{"क", "ख", "ग"}},
		{name: "markers are words", text: "क <num> ख", expect: []string{"क", "<num>", "ख"}},
		{name: "empty", text: "", expect: nil},
		{name: "all whitespace", text: " \t\n", expect: nil},
	}
	scan := NewWordScanner()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var words []string
			for i := 0; i < len(tc.text); {
				start, end := scan.Next(tc.text, i)
				if start == end {
					break
				}
				words = append(words, tc.text[start:end])
				i = end
			}
			if len(words) != len(tc.expect) {
				t.Fatalf("got %d words %v, want %v", len(words), words, tc.expect)
			}
			for i := range words {
				if words[i] != tc.expect[i] {
					t.Fatalf("word %d = %q, want %q", i, words[i], tc.expect[i])
				}
			}
		})
	}
}

func TestNextUnit(t *testing.T) {
	tests := []struct {
		name   string
		word   string
		size   int
		id     uint32
		marker bool
	}{
		{name: "ascii rune", word: "a", size: 1},
		{name: "devanagari rune", word: "अब", size: 3},
		{name: "num marker", word: "<num>", size: 5, id: TokNum, marker: true},
		{name: "eng marker", word: "<eng>x", size: 5, id: TokEng, marker: true},
		{name: "bare angle bracket", word: "<x", size: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			size, id, marker := nextUnit(tc.word, 0)
			if size != tc.size || marker != tc.marker || (marker && id != tc.id) {
				t.Fatalf("nextUnit(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tc.word, size, id, marker, tc.size, tc.id, tc.marker)
			}
		})
	}
}
