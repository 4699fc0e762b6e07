package tokenizer

import (
	"errors"
	"testing"
)

func TestSymbolTableSpecialsFirst(t *testing.T) {
	table := NewSymbolTable()
	want := []struct {
		surface string
		id      uint32
	}{
		{"<pad>", TokPad},
		{"<eos>", TokEOS},
		{"<bos>", TokBOS},
		{"<unk>", TokUnk},
		{"<num>", TokNum},
		{"<eng>", TokEng},
	}
	if table.Len() != len(want) {
		t.Fatalf("fresh table has %d symbols, want %d", table.Len(), len(want))
	}
	for _, tc := range want {
		id, ok := table.ID(tc.surface)
		if !ok || id != tc.id {
			t.Fatalf("ID(%q) = %d, %v; want %d", tc.surface, id, ok, tc.id)
		}
		s, ok := table.Surface(tc.id)
		if !ok || s != tc.surface {
			t.Fatalf("Surface(%d) = %q, %v; want %q", tc.id, s, ok, tc.surface)
		}
	}
}

func TestSymbolTableAddIdempotent(t *testing.T) {
	table := NewSymbolTable()
	first := table.Add("क")
	if again := table.Add("क"); again != first {
		t.Fatalf("second Add returned %d, want %d", again, first)
	}
	if table.Len() != len(specialSurfaces)+1 {
		t.Fatalf("table length %d after duplicate add, want %d", table.Len(), len(specialSurfaces)+1)
	}
}

func TestSymbolTableSequentialIDs(t *testing.T) {
	table := NewSymbolTable()
	surfaces := []string{"क", "ख", "ग", "कख"}
	for i, s := range surfaces {
		id := table.Add(s)
		if want := uint32(len(specialSurfaces) + i); id != want {
			t.Fatalf("Add(%q) = %d, want %d", s, id, want)
		}
	}
	// Bidirectional mapping stays one-to-one.
	seen := make(map[uint32]struct{})
	for _, s := range table.Surfaces() {
		id, ok := table.ID(s)
		if !ok {
			t.Fatalf("surface %q lost its id", s)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = struct{}{}
	}
	if len(seen) != table.Len() {
		t.Fatalf("%d distinct ids for %d symbols", len(seen), table.Len())
	}
}

func TestSymbolTableLookupErrors(t *testing.T) {
	table := NewSymbolTable()
	if _, err := table.LookupID("missing"); !errors.Is(err, ErrSymbolNotFound) {
		t.Fatalf("LookupID error = %v, want ErrSymbolNotFound", err)
	}
	if _, err := table.LookupSurface(9999); !errors.Is(err, ErrSymbolNotFound) {
		t.Fatalf("LookupSurface error = %v, want ErrSymbolNotFound", err)
	}
}
