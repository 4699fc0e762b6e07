package subword

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/euforicio/subword-go/tokenizer"
)

// modelMagic is the artifact header line. Bump the suffix on any format
// change; loaders reject unknown versions outright.
const modelMagic = "subword.model.v1"

// ErrModelFormat reports a malformed or unsupported model artifact.
var ErrModelFormat = errors.New("invalid model artifact")

// SaveModel writes the model artifact: the special token list, the initial
// character assignment order, and the ordered merge rules. Surfaces are
// base64-encoded so the format stays line-oriented regardless of alphabet.
func SaveModel(path string, m *tokenizer.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	werr := writeModel(w, m)
	if ferr := w.Flush(); werr == nil {
		werr = ferr
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("write model %s: %w", path, werr)
	}
	return nil
}

func writeModel(w io.Writer, m *tokenizer.Model) error {
	if _, err := fmt.Fprintln(w, modelMagic); err != nil {
		return err
	}
	for _, s := range tokenizer.SpecialTokens() {
		if _, err := fmt.Fprintf(w, "special %s\n", base64.StdEncoding.EncodeToString([]byte(s))); err != nil {
			return err
		}
	}
	for _, c := range m.InitialChars() {
		if _, err := fmt.Fprintf(w, "char %s\n", base64.StdEncoding.EncodeToString([]byte(c))); err != nil {
			return err
		}
	}
	for _, r := range m.Rules() {
		if _, err := fmt.Fprintf(w, "merge %d %d %d\n", r.Left, r.Right, r.ID); err != nil {
			return err
		}
	}
	return nil
}

// LoadModel reads a model artifact and reconstructs the trained model by
// replaying its merge rules. A reloaded model tokenizes identically to the
// one that was saved.
func LoadModel(path string) (*tokenizer.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	m, err := readModel(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return m, nil
}

func readModel(r *bufio.Reader) (*tokenizer.Model, error) {
	var (
		specials []string
		chars    []string
		rules    []tokenizer.MergeRule
	)
	lineNo := 0
	sawMagic := false
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line == "" && errors.Is(err, io.EOF) {
			break
		}
		lineNo++
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if errors.Is(err, io.EOF) {
				break
			}
			continue
		}
		if !sawMagic {
			if line != modelMagic {
				return nil, fmt.Errorf("line %d: bad header %q: %w", lineNo, line, ErrModelFormat)
			}
			sawMagic = true
			if errors.Is(err, io.EOF) {
				break
			}
			continue
		}
		field, rest, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrModelFormat)
		}
		switch field {
		case "special":
			s, derr := base64.StdEncoding.DecodeString(rest)
			if derr != nil {
				return nil, fmt.Errorf("line %d: %v: %w", lineNo, derr, ErrModelFormat)
			}
			specials = append(specials, string(s))
		case "char":
			s, derr := base64.StdEncoding.DecodeString(rest)
			if derr != nil {
				return nil, fmt.Errorf("line %d: %v: %w", lineNo, derr, ErrModelFormat)
			}
			chars = append(chars, string(s))
		case "merge":
			rule, perr := parseMerge(rest)
			if perr != nil {
				return nil, fmt.Errorf("line %d: %v: %w", lineNo, perr, ErrModelFormat)
			}
			rules = append(rules, rule)
		default:
			return nil, fmt.Errorf("line %d: unknown field %q: %w", lineNo, field, ErrModelFormat)
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}
	if !sawMagic {
		return nil, fmt.Errorf("missing header: %w", ErrModelFormat)
	}
	want := tokenizer.SpecialTokens()
	if len(specials) != len(want) {
		return nil, fmt.Errorf("special token count %d, want %d: %w", len(specials), len(want), ErrModelFormat)
	}
	for i := range want {
		if specials[i] != want[i] {
			return nil, fmt.Errorf("special token %d is %q, want %q: %w", i, specials[i], want[i], ErrModelFormat)
		}
	}
	m, err := tokenizer.ReconstructModel(chars, rules)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrModelFormat)
	}
	return m, nil
}

func parseMerge(rest string) (tokenizer.MergeRule, error) {
	parts := strings.Fields(rest)
	if len(parts) != 3 {
		return tokenizer.MergeRule{}, fmt.Errorf("merge needs 3 ids, got %d", len(parts))
	}
	ids := make([]uint32, 3)
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return tokenizer.MergeRule{}, err
		}
		ids[i] = uint32(v)
	}
	return tokenizer.MergeRule{Left: ids[0], Right: ids[1], ID: ids[2]}, nil
}
