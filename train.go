package subword

import (
	"context"
	"fmt"

	"github.com/euforicio/subword-go/tokenizer"
)

// Train learns a vocabulary from the cleaned corpus text and returns the
// trained model with its statistics. An empty corpus yields a valid model
// holding only the special tokens; such a model maps every non-special input
// to <unk>. Cancellation is honored between merge iterations.
func Train(ctx context.Context, corpus string, cfg Config) (*Result, error) {
	if cfg.TargetVocabSize < 1 {
		return nil, fmt.Errorf("target vocab size %d: must be positive", cfg.TargetVocabSize)
	}
	b, err := tokenizer.NewBuilder(corpus, cfg.TargetVocabSize, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("encode corpus: %w", err)
	}
	model, err := b.Train(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{Model: model, Stats: buildStats(b, model)}, nil
}
