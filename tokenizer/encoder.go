package tokenizer

import "sort"

// encodedWord is one whitespace-delimited word as a sequence of symbol ids.
// Words are rewritten in place during training and never merge across their
// boundaries.
type encodedWord []uint32

// collectAlphabet registers every distinct non-marker rune of the corpus in
// the table, sorted by codepoint so identical corpora yield identical ids.
func collectAlphabet(text string, table *SymbolTable, scan WordScanner) {
	seen := make(map[rune]struct{}, 128)
	for i := 0; i < len(text); {
		start, end := scan.Next(text, i)
		if start == end {
			break
		}
		word := text[start:end]
		for j := 0; j < len(word); {
			size, _, marker := nextUnit(word, j)
			if !marker {
				for _, r := range word[j : j+size] {
					seen[r] = struct{}{}
				}
			}
			j += size
		}
		i = end
	}
	runes := make([]rune, 0, len(seen))
	for r := range seen {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(a, b int) bool { return runes[a] < runes[b] })
	for _, r := range runes {
		table.Add(string(r))
	}
}

// encodeCorpus maps every word of the cleaned text to symbol ids through the
// table. The alphabet must already be registered; an unseen rune here is an
// invariant break and surfaces as ErrSymbolNotFound.
func encodeCorpus(text string, table *SymbolTable, scan WordScanner) ([]encodedWord, error) {
	var words []encodedWord
	for i := 0; i < len(text); {
		start, end := scan.Next(text, i)
		if start == end {
			break
		}
		w, err := encodeWord(text[start:end], table)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
		i = end
	}
	return words, nil
}

func encodeWord(word string, table *SymbolTable) (encodedWord, error) {
	ids := make(encodedWord, 0, len(word))
	for i := 0; i < len(word); {
		size, tok, marker := nextUnit(word, i)
		if marker {
			ids = append(ids, tok)
		} else {
			id, err := table.LookupID(word[i : i+size])
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		i += size
	}
	return ids, nil
}

// totalUnits sums the symbol count over all words.
func totalUnits(words []encodedWord) int {
	n := 0
	for _, w := range words {
		n += len(w)
	}
	return n
}
