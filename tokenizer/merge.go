package tokenizer

import (
	"sync"
	"sync/atomic"
)

// MergeRule records one learned merge: Left immediately followed by Right
// rewrites to ID. Replaying the ordered rule list over the initial table
// reconstructs the trained model exactly.
type MergeRule struct {
	Left  uint32
	Right uint32
	ID    uint32
}

// mergeWords rewrites every non-overlapping left-to-right occurrence of the
// pair (a, b) to id across all words. Reports whether any word changed.
func mergeWords(words []encodedWord, a, b, id uint32, workers int) bool {
	if workers <= 1 || len(words) < sequentialThreshold {
		changed := false
		for i, w := range words {
			if nw, ok := mergeWord(w, a, b, id); ok {
				words[i] = nw
				changed = true
			}
		}
		return changed
	}
	if workers > len(words) {
		workers = len(words)
	}

	var changed atomic.Bool
	var wg sync.WaitGroup
	chunk := (len(words) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(words) {
			hi = len(words)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if nw, ok := mergeWord(words[i], a, b, id); ok {
					words[i] = nw
					changed.Store(true)
				}
			}
		}(lo, hi)
	}
	wg.Wait()
	return changed.Load()
}

// mergeWord replaces (a, b) with id inside one word, scanning left to right
// and consuming both positions on a match so occurrences never overlap:
// (a, a) in [a a a] merges the first two, never the last two.
func mergeWord(w encodedWord, a, b, id uint32) (encodedWord, bool) {
	n := len(w)
	if n < 2 {
		return w, false
	}
	out := w[:0]
	changed := false
	for i := 0; i < n; {
		if i+1 < n && w[i] == a && w[i+1] == b {
			out = append(out, id)
			i += 2
			changed = true
			continue
		}
		out = append(out, w[i])
		i++
	}
	if !changed {
		return w, false
	}
	return out, true
}
