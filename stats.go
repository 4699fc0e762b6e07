package subword

import "github.com/euforicio/subword-go/tokenizer"

// buildStats derives the training summary from the builder's before/after
// counts. Read-only; the ratio falls back to zero for a tokenless corpus so
// the empty-corpus path never divides by zero.
func buildStats(b *tokenizer.Builder, m *tokenizer.Model) Stats {
	s := Stats{
		InitialTokens: b.InitialUnits(),
		InitialVocab:  b.InitialVocabSize(),
		FinalTokens:   b.FinalUnits(),
		FinalVocab:    m.VocabSize(),
	}
	if s.FinalTokens > 0 {
		s.CompressionRatio = float64(s.InitialTokens) / float64(s.FinalTokens)
	}
	return s
}
