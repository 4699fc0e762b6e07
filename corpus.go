package subword

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Corpus read failures. ErrEmptyCorpus is advisory: training on an empty
// corpus converges to a specials-only model rather than failing.
var (
	ErrCorpusNotFound = errors.New("corpus not found")
	ErrEmptyCorpus    = errors.New("corpus is empty")
)

// corpusChunk bounds each read so arbitrarily large files stream through a
// fixed buffer.
const corpusChunk = 1 << 20

// ReadCorpus loads a cleaned UTF-8 corpus file. A missing file reports
// ErrCorpusNotFound; a file with no words reports ErrEmptyCorpus alongside
// the (empty) text so callers may proceed with a degenerate model.
func ReadCorpus(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrCorpusNotFound)
		}
		return "", fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	r := bufio.NewReaderSize(f, corpusChunk)
	buf := make([]byte, corpusChunk)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			sb.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read corpus %s: %w", path, err)
		}
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return text, fmt.Errorf("%s: %w", path, ErrEmptyCorpus)
	}
	return text, nil
}
