package tokenizer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Tokenizer segments text into vocabulary ids by longest-match greedy
// scanning over the model's surface strings. Whitespace separates words and
// emits no ids; no learned surface spans a word boundary. Characters outside
// the trained alphabet degrade to the <unk> id, one rune at a time.
//
// A Tokenizer is read-only after construction and safe for concurrent use.
type Tokenizer struct {
	model *Model
	scan  WordScanner
	// index buckets vocabulary surfaces by first rune, longest first, so a
	// position needs only one bucket scan instead of the whole vocabulary.
	index map[rune][]indexEntry
}

type indexEntry struct {
	surface string
	id      uint32
}

// NewTokenizer builds the inference-time prefix index over the model's
// vocabulary.
func NewTokenizer(m *Model) *Tokenizer {
	index := make(map[rune][]indexEntry, m.table.Len())
	for id, surface := range m.table.surfaces {
		r, _ := utf8.DecodeRuneInString(surface)
		index[r] = append(index[r], indexEntry{surface: surface, id: uint32(id)})
	}
	for r := range index {
		bucket := index[r]
		sort.Slice(bucket, func(a, b int) bool {
			if len(bucket[a].surface) != len(bucket[b].surface) {
				return len(bucket[a].surface) > len(bucket[b].surface)
			}
			return bucket[a].surface < bucket[b].surface
		})
	}
	return &Tokenizer{model: m, scan: NewWordScanner(), index: index}
}

// Model returns the trained model this tokenizer reads from.
func (t *Tokenizer) Model() *Model { return t.model }

// Tokenize segments text into vocabulary ids.
func (t *Tokenizer) Tokenize(text string) []uint32 {
	var out []uint32
	t.TokenizeInto(text, &out)
	return out
}

// TokenizeInto appends the ids for text into out without creating an
// intermediate result slice.
func (t *Tokenizer) TokenizeInto(text string, out *[]uint32) {
	for i := 0; i < len(text); {
		start, end := t.scan.Next(text, i)
		if start == end {
			break
		}
		t.tokenizeWord(text[start:end], out)
		i = end
	}
}

// tokenizeWord consumes one word left to right, taking the longest vocabulary
// surface that prefixes the remainder at each position.
func (t *Tokenizer) tokenizeWord(word string, out *[]uint32) {
	for i := 0; i < len(word); {
		rest := word[i:]
		r, size := utf8.DecodeRuneInString(rest)
		matched := false
		for _, e := range t.index[r] {
			if len(e.surface) <= len(rest) && strings.HasPrefix(rest, e.surface) {
				*out = append(*out, e.id)
				i += len(e.surface)
				matched = true
				break
			}
		}
		if !matched {
			*out = append(*out, TokUnk)
			i += size
		}
	}
}
