package tokenizer

import (
	"context"
	"strings"
	"sync"
	"testing"
)

func trainModel(t *testing.T, corpus string, target int) *Model {
	t.Helper()
	_, m := mustTrain(t, corpus, target)
	return m
}

func TestTokenizeRoundTrip(t *testing.T) {
	corpus := "अअब अब कख कखग अब कख"
	m := trainModel(t, corpus, 30)
	tok := NewTokenizer(m)

	tests := []string{
		"अअब अब",
		"कखग",
		"अब कख अब",
		"ब",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			ids := tok.Tokenize(text)
			got, err := m.Decode(ids)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			want := strings.Join(strings.Fields(text), "")
			if got != want {
				t.Fatalf("round trip = %q, want %q", got, want)
			}
		})
	}
}

func TestTokenizeLongestMatchWins(t *testing.T) {
	// Corpus drives merges of कख and कखग; the longer surface must win.
	m := trainModel(t, strings.Repeat("कखग ", 8)+strings.Repeat("कख ", 4), 12)
	tok := NewTokenizer(m)

	idFull, err := m.ID("कखग")
	if err != nil {
		t.Fatalf("expected merged symbol कखग: %v", err)
	}
	ids := tok.Tokenize("कखग")
	if len(ids) != 1 || ids[0] != idFull {
		t.Fatalf("Tokenize(कखग) = %v, want [%d]", ids, idFull)
	}
}

func TestTokenizeUnknownRunesDegradeToUnk(t *testing.T) {
	m := trainModel(t, "अब अब", 10)
	tok := NewTokenizer(m)

	ids := tok.Tokenize("अxयब")
	idA, _ := m.ID("अ")
	idB, _ := m.ID("ब")
	want := []uint32{idA, TokUnk, TokUnk, idB}
	if len(ids) != len(want) {
		t.Fatalf("Tokenize = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Tokenize = %v, want %v", ids, want)
		}
	}
}

func TestTokenizeMarkers(t *testing.T) {
	m := trainModel(t, "अ <num> ब", 100)
	tok := NewTokenizer(m)

	ids := tok.Tokenize("<num> <eng>")
	want := []uint32{TokNum, TokEng}
	if len(ids) != len(want) || ids[0] != want[0] || ids[1] != want[1] {
		t.Fatalf("Tokenize = %v, want %v", ids, want)
	}
}

func TestTokenizeWhitespaceEmitsNothing(t *testing.T) {
	m := trainModel(t, "अब", 10)
	tok := NewTokenizer(m)
	if ids := tok.Tokenize("  \t\n "); len(ids) != 0 {
		t.Fatalf("Tokenize(whitespace) = %v, want empty", ids)
	}
}

func TestTokenizeEmptyModelFallsBackToUnk(t *testing.T) {
	m := trainModel(t, "", 100)
	tok := NewTokenizer(m)
	ids := tok.Tokenize("अब")
	if len(ids) != 2 || ids[0] != TokUnk || ids[1] != TokUnk {
		t.Fatalf("Tokenize = %v, want [unk unk]", ids)
	}
}

func TestDecodeUnknownID(t *testing.T) {
	m := trainModel(t, "अब", 10)
	if _, err := m.Decode([]uint32{99999}); err == nil {
		t.Fatal("expected error decoding unknown id")
	}
}

func TestTokenizerConcurrentUse(t *testing.T) {
	m := trainModel(t, "अअब अब कख कखग", 30)
	tok := NewTokenizer(m)
	want := tok.Tokenize("अअब कखग")

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				ids := tok.Tokenize("अअब कखग")
				if len(ids) != len(want) {
					t.Errorf("concurrent Tokenize = %v, want %v", ids, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestReconstructModelMatchesTrained(t *testing.T) {
	corpus := "अअब अब कखग कख"
	b, err := NewBuilder(corpus, 20, 1)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	trained, err := b.Train(context.Background())
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	t.Cleanup(trained.Close)

	rebuilt, err := ReconstructModel(trained.InitialChars(), trained.Rules())
	if err != nil {
		t.Fatalf("ReconstructModel: %v", err)
	}
	t.Cleanup(rebuilt.Close)

	if rebuilt.VocabSize() != trained.VocabSize() {
		t.Fatalf("vocab %d, want %d", rebuilt.VocabSize(), trained.VocabSize())
	}
	tokA := NewTokenizer(trained)
	tokB := NewTokenizer(rebuilt)
	for _, text := range []string{"अअब", "कखग अब", "अ य ब"} {
		a := tokA.Tokenize(text)
		bIDs := tokB.Tokenize(text)
		if len(a) != len(bIDs) {
			t.Fatalf("%q: rebuilt %v, trained %v", text, bIDs, a)
		}
		for i := range a {
			if a[i] != bIDs[i] {
				t.Fatalf("%q: rebuilt %v, trained %v", text, bIDs, a)
			}
		}
	}
}

func TestReconstructModelRejectsBadRules(t *testing.T) {
	tests := []struct {
		name  string
		chars []string
		rules []MergeRule
	}{
		{
			name:  "unknown left id",
			chars: []string{"क"},
			rules: []MergeRule{{Left: 99, Right: 6, ID: 7}},
		},
		{
			name:  "id not fresh",
			chars: []string{"क", "ख"},
			rules: []MergeRule{{Left: 6, Right: 7, ID: 6}},
		},
		{
			name:  "duplicate initial symbol",
			chars: []string{"क", "क"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReconstructModel(tc.chars, tc.rules); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
