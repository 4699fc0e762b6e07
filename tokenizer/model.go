package tokenizer

import (
	"fmt"
	"sync"
)

// Model is a trained vocabulary: the final symbol table plus the ordered
// merge rule list. It is immutable and safe for concurrent use by any number
// of Tokenizers.
type Model struct {
	table        *SymbolTable
	rules        []MergeRule
	initialVocab int
	store        symbolStore
	bufPool      sync.Pool
}

func newModel(table *SymbolTable, rules []MergeRule, initialVocab int) *Model {
	t := table.clone()
	r := make([]MergeRule, len(rules))
	copy(r, rules)
	return &Model{
		table:        t,
		rules:        r,
		initialVocab: initialVocab,
		store:        newSymbolStore(t.surfaces),
		bufPool:      sync.Pool{New: func() any { b := make([]byte, 0, 128); return &b }},
	}
}

// ReconstructModel rebuilds a model from its persisted parts: the initial
// character surfaces in id order and the ordered merge rules. Special tokens
// are implicit; their surfaces and ids are fixed. Replay validates that every
// rule references existing symbols and mints the exact id it was recorded
// with.
func ReconstructModel(chars []string, rules []MergeRule) (*Model, error) {
	table := NewSymbolTable()
	for _, c := range chars {
		if _, ok := table.ID(c); ok {
			return nil, fmt.Errorf("duplicate initial symbol %q", c)
		}
		table.Add(c)
	}
	initialVocab := table.Len()
	for i, r := range rules {
		left, err := table.LookupSurface(r.Left)
		if err != nil {
			return nil, fmt.Errorf("merge rule %d: left: %w", i, err)
		}
		right, err := table.LookupSurface(r.Right)
		if err != nil {
			return nil, fmt.Errorf("merge rule %d: right: %w", i, err)
		}
		if got := table.Add(left + right); got != r.ID {
			return nil, fmt.Errorf("merge rule %d: minted id %d, artifact says %d", i, got, r.ID)
		}
	}
	return newModel(table, rules, initialVocab), nil
}

// VocabSize reports the total number of symbols.
func (m *Model) VocabSize() int { return m.table.Len() }

// InitialVocabSize reports the symbol count before the first merge.
func (m *Model) InitialVocabSize() int { return m.initialVocab }

// Rules returns the merge rules in learned order. The result is a copy.
func (m *Model) Rules() []MergeRule {
	out := make([]MergeRule, len(m.rules))
	copy(out, m.rules)
	return out
}

// InitialChars returns the corpus alphabet surfaces in id order, excluding
// special tokens.
func (m *Model) InitialChars() []string {
	out := make([]string, m.initialVocab-len(specialSurfaces))
	copy(out, m.table.surfaces[len(specialSurfaces):m.initialVocab])
	return out
}

// Surface returns the surface string for id.
func (m *Model) Surface(id uint32) (string, error) { return m.table.LookupSurface(id) }

// ID returns the id for surface.
func (m *Model) ID(surface string) (uint32, error) { return m.table.LookupID(surface) }

// IsSpecial reports whether id names a special token.
func (m *Model) IsSpecial(id uint32) bool { return int(id) < len(specialSurfaces) }

// Decode concatenates the surface strings of ids.
func (m *Model) Decode(ids []uint32) (string, error) {
	bp := m.bufPool.Get().(*[]byte)
	buf := (*bp)[:0]
	if err := m.DecodeInto(&buf, ids); err != nil {
		*bp = buf
		m.bufPool.Put(bp)
		return "", err
	}
	s := string(buf)
	*bp = buf
	m.bufPool.Put(bp)
	return s, nil
}

// DecodeInto appends the decoded surfaces for ids into dst, avoiding
// intermediate allocations.
func (m *Model) DecodeInto(dst *[]byte, ids []uint32) error {
	buf := *dst
	for _, id := range ids {
		if !m.store.AppendInto(&buf, id) {
			return fmt.Errorf("decode id %d: %w", id, ErrSymbolNotFound)
		}
	}
	*dst = buf
	return nil
}

// Close releases the model's surface store.
func (m *Model) Close() { m.store.Close() }
