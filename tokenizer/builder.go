package tokenizer

import (
	"context"
	"runtime"
)

// Phase is the vocabulary builder's lifecycle state.
type Phase int

// Builder phases. Converged is terminal.
const (
	PhaseInitializing Phase = iota
	PhaseTraining
	PhaseConverged
)

// Builder learns a BPE vocabulary from a cleaned corpus: it repeatedly tallies
// adjacent-symbol pairs, merges the most frequent one into a freshly minted
// symbol, and records the merge rule, until the target vocabulary size is
// reached or no pair remains. A Builder is single-use; Train may be called
// once.
type Builder struct {
	table   *SymbolTable
	words   []encodedWord
	rules   []MergeRule
	target  int
	workers int
	phase   Phase

	initialVocab int
	initialUnits int
}

// NewBuilder encodes the cleaned corpus and prepares training toward
// targetVocab total symbols (special tokens and alphabet included). workers
// bounds intra-iteration parallelism; values below one select GOMAXPROCS.
func NewBuilder(text string, targetVocab, workers int) (*Builder, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	b := &Builder{
		table:   NewSymbolTable(),
		target:  targetVocab,
		workers: workers,
		phase:   PhaseInitializing,
	}
	scan := NewWordScanner()
	collectAlphabet(text, b.table, scan)
	words, err := encodeCorpus(text, b.table, scan)
	if err != nil {
		return nil, err
	}
	b.words = words
	b.initialVocab = b.table.Len()
	b.initialUnits = totalUnits(words)
	b.phase = PhaseTraining
	return b, nil
}

// Phase reports the builder's current lifecycle state.
func (b *Builder) Phase() Phase { return b.phase }

// InitialVocabSize reports the symbol count before any merge (specials plus
// corpus alphabet).
func (b *Builder) InitialVocabSize() int { return b.initialVocab }

// InitialUnits reports the corpus length in symbols before any merge.
func (b *Builder) InitialUnits() int { return b.initialUnits }

// FinalUnits reports the current corpus length in symbols. After Train
// returns this is the token count of the fully merged corpus.
func (b *Builder) FinalUnits() int { return totalUnits(b.words) }

// Train runs merge iterations until the vocabulary reaches the target size or
// no mergeable pair remains, then returns the immutable trained model.
// Cancellation is honored between iterations; a cancelled context surfaces
// ctx.Err() and leaves the builder unfinished.
func (b *Builder) Train(ctx context.Context) (*Model, error) {
	for b.phase == PhaseTraining {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if b.table.Len() >= b.target {
			b.phase = PhaseConverged
			break
		}
		tally := tallyPairs(b.words, b.workers)
		pair, ok := selectPair(tally)
		if !ok {
			b.phase = PhaseConverged
			break
		}
		if !b.applyMerge(pair) {
			// Selected pair no longer occurs: no progress is possible.
			b.phase = PhaseConverged
			break
		}
	}
	return newModel(b.table, b.rules, b.initialVocab), nil
}

// applyMerge mints the concatenated symbol, records the rule, and rewrites
// the corpus. Reports whether any occurrence was rewritten.
func (b *Builder) applyMerge(pair pairKey) bool {
	left, err := b.table.LookupSurface(pair.A)
	if err != nil {
		return false
	}
	right, err := b.table.LookupSurface(pair.B)
	if err != nil {
		return false
	}
	surface := left + right
	if id, ok := b.table.ID(surface); ok {
		// Two distinct pair sequences can compose the same surface text.
		// Fold occurrences into the existing symbol without minting a
		// duplicate; the vocabulary does not grow.
		return mergeWords(b.words, pair.A, pair.B, id, b.workers)
	}
	// Rewrite against the next free id before registering the surface, so a
	// no-progress merge leaves the table untouched.
	id := uint32(b.table.Len())
	if !mergeWords(b.words, pair.A, pair.B, id, b.workers) {
		return false
	}
	b.table.Add(surface)
	b.rules = append(b.rules, MergeRule{Left: pair.A, Right: pair.B, ID: id})
	return true
}
