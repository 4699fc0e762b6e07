package tokenizer

import (
	"errors"
	"fmt"
)

// ErrSymbolNotFound reports a lookup for an id or surface the table never
// assigned. With a well-formed model this indicates a programming error,
// not bad input.
var ErrSymbolNotFound = errors.New("symbol not found")

// SymbolTable is a bidirectional mapping between symbol surfaces and dense
// integer ids. Ids are assigned sequentially from zero in first-add order and
// are never reused. The zero value is not usable; call NewSymbolTable.
type SymbolTable struct {
	ids      map[string]uint32
	surfaces []string
}

// NewSymbolTable returns a table pre-seeded with the special tokens so their
// ids are identical across runs and models.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{ids: make(map[string]uint32, 64)}
	for _, s := range specialSurfaces {
		t.Add(s)
	}
	return t
}

// Add registers surface and returns its id. Adding an existing surface is a
// no-op returning the previously assigned id.
func (t *SymbolTable) Add(surface string) uint32 {
	if id, ok := t.ids[surface]; ok {
		return id
	}
	id := uint32(len(t.surfaces))
	t.ids[surface] = id
	t.surfaces = append(t.surfaces, surface)
	return id
}

// ID returns the id for surface.
func (t *SymbolTable) ID(surface string) (uint32, bool) {
	id, ok := t.ids[surface]
	return id, ok
}

// Surface returns the surface string for id.
func (t *SymbolTable) Surface(id uint32) (string, bool) {
	if int(id) >= len(t.surfaces) {
		return "", false
	}
	return t.surfaces[id], true
}

// LookupID is the erroring variant of ID.
func (t *SymbolTable) LookupID(surface string) (uint32, error) {
	id, ok := t.ids[surface]
	if !ok {
		return 0, fmt.Errorf("surface %q: %w", surface, ErrSymbolNotFound)
	}
	return id, nil
}

// LookupSurface is the erroring variant of Surface.
func (t *SymbolTable) LookupSurface(id uint32) (string, error) {
	if int(id) >= len(t.surfaces) {
		return "", fmt.Errorf("id %d: %w", id, ErrSymbolNotFound)
	}
	return t.surfaces[id], nil
}

// Len reports the number of distinct symbols, which also equals the next id.
func (t *SymbolTable) Len() int { return len(t.surfaces) }

// Surfaces returns the surface strings in id order. The result is a copy.
func (t *SymbolTable) Surfaces() []string {
	out := make([]string, len(t.surfaces))
	copy(out, t.surfaces)
	return out
}

// clone returns an independent copy of the table.
func (t *SymbolTable) clone() *SymbolTable {
	c := &SymbolTable{
		ids:      make(map[string]uint32, len(t.ids)),
		surfaces: make([]string, len(t.surfaces)),
	}
	for s, id := range t.ids {
		c.ids[s] = id
	}
	copy(c.surfaces, t.surfaces)
	return c
}
