package tokenizer

import "sync"

// pairKey identifies symbol A immediately followed by symbol B inside a word.
type pairKey struct {
	A, B uint32
}

// pairStat carries an occurrence count and the first scan position the pair
// was seen at (word index, then offset). The position makes the highest-count
// selection deterministic: map iteration order never decides a tie.
type pairStat struct {
	count int
	word  int
	pos   int
}

// before reports whether s was first seen earlier in scan order than o.
func (s *pairStat) before(o *pairStat) bool {
	if s.word != o.word {
		return s.word < o.word
	}
	return s.pos < o.pos
}

// sequentialThreshold is the word count below which fan-out costs more than
// it saves.
const sequentialThreshold = 64

// tallyPairs counts every adjacent pair across all words. Words shorter than
// two symbols contribute nothing. The parallel path shards words into
// contiguous ranges and reduces per-shard tallies; results are identical to
// the sequential scan.
func tallyPairs(words []encodedWord, workers int) map[pairKey]*pairStat {
	if workers <= 1 || len(words) < sequentialThreshold {
		tally := make(map[pairKey]*pairStat, len(words))
		tallyRange(words, 0, tally)
		return tally
	}
	if workers > len(words) {
		workers = len(words)
	}

	shards := make([]map[pairKey]*pairStat, workers)
	var wg sync.WaitGroup
	chunk := (len(words) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(words) {
			hi = len(words)
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			local := make(map[pairKey]*pairStat, hi-lo)
			tallyRange(words[lo:hi], lo, local)
			shards[w] = local
		}(w, lo, hi)
	}
	wg.Wait()

	tally := shards[0]
	for _, shard := range shards[1:] {
		for k, s := range shard {
			if prev, ok := tally[k]; ok {
				prev.count += s.count
				if s.before(prev) {
					prev.word, prev.pos = s.word, s.pos
				}
				continue
			}
			tally[k] = s
		}
	}
	return tally
}

// tallyRange accumulates pairs for words, with base as the global index of
// words[0] so first-seen positions stay comparable across shards.
func tallyRange(words []encodedWord, base int, tally map[pairKey]*pairStat) {
	for wi, w := range words {
		if len(w) < 2 {
			continue
		}
		for i := 0; i+1 < len(w); i++ {
			k := pairKey{w[i], w[i+1]}
			if s, ok := tally[k]; ok {
				s.count++
				continue
			}
			tally[k] = &pairStat{count: 1, word: base + wi, pos: i}
		}
	}
}

// selectPair picks the pair with the strictly highest count, breaking ties by
// earliest first-seen scan position. Returns false when the tally is empty.
func selectPair(tally map[pairKey]*pairStat) (pairKey, bool) {
	var (
		best     pairKey
		bestStat *pairStat
	)
	for k, s := range tally {
		switch {
		case bestStat == nil:
			best, bestStat = k, s
		case s.count > bestStat.count:
			best, bestStat = k, s
		case s.count == bestStat.count && s.before(bestStat):
			best, bestStat = k, s
		}
	}
	return best, bestStat != nil
}
