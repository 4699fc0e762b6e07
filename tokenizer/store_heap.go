//go:build !goexperiment.arenas

package tokenizer

// Heap-backed symbol store indexed directly by id. This is the default
// implementation and serves as the fallback when arenas are not enabled.

type heapStore struct {
	arr []string // index is symbol id
}

func newSymbolStore(surfaces []string) symbolStore {
	arr := make([]string, len(surfaces))
	copy(arr, surfaces)
	return &heapStore{arr: arr}
}

func (s *heapStore) AppendInto(dst *[]byte, id uint32) bool {
	if int(id) >= len(s.arr) {
		return false
	}
	*dst = append(*dst, s.arr[id]...)
	return true
}

func (s *heapStore) Close() {}
