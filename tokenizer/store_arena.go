//go:build goexperiment.arenas

package tokenizer

import "arena"

// Arena-backed symbol store. Surfaces live contiguously in a dedicated arena
// blob with an offset table. AppendInto copies from the blob into the
// destination to avoid leaking arena-backed slices to the heap.
type arenaStore struct {
	a    *arena.Arena
	blob []byte
	off  []uint32
}

func newSymbolStore(surfaces []string) symbolStore {
	a := arena.NewArena()
	total := 0
	for _, s := range surfaces {
		total += len(s)
	}
	blob := arena.MakeSlice[byte](a, total, total)
	off := arena.MakeSlice[uint32](a, len(surfaces)+1, len(surfaces)+1)
	pos := 0
	for i, s := range surfaces {
		off[i] = uint32(pos)
		copy(blob[pos:pos+len(s)], s)
		pos += len(s)
	}
	off[len(surfaces)] = uint32(pos)
	return &arenaStore{a: a, blob: blob, off: off}
}

func (s *arenaStore) AppendInto(dst *[]byte, id uint32) bool {
	if int(id) >= len(s.off)-1 {
		return false
	}
	*dst = append(*dst, s.blob[s.off[id]:s.off[id+1]]...)
	return true
}

func (s *arenaStore) Close() { s.a.Free() }
