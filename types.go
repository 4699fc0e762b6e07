package subword

import "github.com/euforicio/subword-go/tokenizer"

// Config controls vocabulary training.
type Config struct {
	// TargetVocabSize bounds the total distinct symbols, special tokens and
	// corpus alphabet included. Training stops once the table reaches it.
	TargetVocabSize int
	// Workers bounds per-iteration parallelism over independent words.
	// Zero or negative selects GOMAXPROCS.
	Workers int
}

// DefaultConfig mirrors the defaults of the reference vocabulary build.
func DefaultConfig() Config {
	return Config{TargetVocabSize: 50000}
}

// Stats summarizes a training run. CompressionRatio is initial units divided
// by final tokens, and zero when the final token count is zero.
type Stats struct {
	InitialTokens    int     `json:"initial_tokens"`
	InitialVocab     int     `json:"initial_vocab"`
	FinalTokens      int     `json:"final_tokens"`
	FinalVocab       int     `json:"final_vocab"`
	CompressionRatio float64 `json:"compression_ratio"`
}

// Result couples a trained model with its training statistics.
type Result struct {
	Model *tokenizer.Model
	Stats Stats
}
