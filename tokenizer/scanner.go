package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordScanner yields whitespace-delimited words from cleaned corpus text.
// Next returns the [start, end) byte range of the next word at or after i,
// or start == end == len(s) when no word remains.
type WordScanner interface {
	Next(s string, i int) (start, end int)
}

type spaceScanner struct{}

// NewWordScanner returns the default scanner splitting on Unicode whitespace.
func NewWordScanner() WordScanner { return spaceScanner{} }

func (spaceScanner) Next(s string, i int) (int, int) {
	start := i
	for start < len(s) {
		b := s[start]
		if b < utf8.RuneSelf {
			if !isASCIISpace(b) {
				break
			}
			start++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	end := start
	for end < len(s) {
		b := s[end]
		if b < utf8.RuneSelf {
			if isASCIISpace(b) {
				break
			}
			end++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[end:])
		if unicode.IsSpace(r) {
			break
		}
		end += size
	}
	return start, end
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// nextUnit reports the byte length of the atomic unit starting at w[i] within
// a word, together with its special id when the unit is a placeholder marker.
// Non-marker units are single runes.
func nextUnit(w string, i int) (size int, id uint32, marker bool) {
	if w[i] == '<' {
		for surface, tok := range corpusMarkers {
			if strings.HasPrefix(w[i:], surface) {
				return len(surface), tok, true
			}
		}
	}
	_, size = utf8.DecodeRuneInString(w[i:])
	return size, 0, false
}
