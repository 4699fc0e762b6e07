package tokenizer

// symbolStore abstracts storage of symbol surface bytes for decoding.
// Implementations must not let references to internal storage escape.
type symbolStore interface {
	// AppendInto appends the surface bytes for id into dst and returns true
	// if the id existed. Returns false when id is unknown.
	AppendInto(dst *[]byte, id uint32) bool
	// Close releases any resources held by the store.
	Close()
}
