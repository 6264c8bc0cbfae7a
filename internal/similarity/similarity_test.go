package similarity

import (
	"testing"

	"github.com/impactspark/impactspark/internal/record"
)

func TestFindSimilarRanksByContent(t *testing.T) {
	records := []record.Record{
		{Title: "Deep learning for genomics", Abstract: "neural networks applied to genome sequences"},
		{Title: "Neural networks in genomics", Abstract: "deep neural networks for genome analysis"},
		{Title: "Medieval pottery techniques", Abstract: "clay firing methods in medieval europe"},
	}

	matches := FindSimilar(records, 0, 2)

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Index != 1 {
		t.Errorf("closest match index = %d, want 1 (shared genomics vocabulary)", matches[0].Index)
	}
	if matches[0].Similarity <= matches[1].Similarity {
		t.Errorf("matches not sorted descending: %v then %v", matches[0].Similarity, matches[1].Similarity)
	}
}

func TestFindSimilarExcludesTarget(t *testing.T) {
	records := []record.Record{
		{Title: "alpha beta gamma"},
		{Title: "alpha beta gamma"},
		{Title: "alpha beta delta"},
	}

	matches := FindSimilar(records, 1, 10)

	for _, m := range matches {
		if m.Index == 1 {
			t.Fatal("target record appeared in its own results")
		}
	}
	if len(matches) != 2 {
		t.Errorf("got %d matches, want 2", len(matches))
	}
}

func TestFindSimilarTruncatesToN(t *testing.T) {
	records := []record.Record{
		{Title: "shared topic one"},
		{Title: "shared topic two"},
		{Title: "shared topic three"},
		{Title: "shared topic four"},
	}

	matches := FindSimilar(records, 0, 2)
	if len(matches) != 2 {
		t.Errorf("got %d matches, want 2", len(matches))
	}
}

func TestFindSimilarDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		records []record.Record
		target  int
	}{
		{"empty batch", nil, 0},
		{"single record", []record.Record{{Title: "only"}}, 0},
		{"target out of range", []record.Record{{Title: "a"}, {Title: "b"}}, 5},
		{"negative target", []record.Record{{Title: "a"}, {Title: "b"}}, -1},
		{"no text features", []record.Record{{}, {}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindSimilar(tt.records, tt.target, 5); got != nil {
				t.Errorf("expected nil result, got %+v", got)
			}
		})
	}
}

func TestFindSimilarFeaturePriority(t *testing.T) {
	// Abstracts dominate when present anywhere in the batch; records
	// without one still contribute their other features.
	records := []record.Record{
		{Title: "x", Abstract: "quantum computing with superconducting qubits"},
		{Title: "quantum computing hardware"},
		{Title: "x", Abstract: "gardening tips for spring vegetables"},
	}

	matches := FindSimilar(records, 0, 1)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Index != 1 {
		t.Errorf("closest match = %d, want 1", matches[0].Index)
	}
}

func TestCosine(t *testing.T) {
	a := map[string]int{"x": 1, "y": 1}
	b := map[string]int{"x": 1, "y": 1}
	if got := cosine(a, b); got < 0.999 || got > 1.001 {
		t.Errorf("cosine of identical vectors = %v, want 1", got)
	}

	c := map[string]int{"z": 3}
	if got := cosine(a, c); got != 0 {
		t.Errorf("cosine of disjoint vectors = %v, want 0", got)
	}

	if got := cosine(a, map[string]int{}); got != 0 {
		t.Errorf("cosine with empty vector = %v, want 0", got)
	}
}

func TestTermCountsStopwords(t *testing.T) {
	counts := termCounts("the quantum state of the quantum system")
	if _, ok := counts["the"]; ok {
		t.Error("stopword 'the' should be removed")
	}
	if counts["quantum"] != 2 {
		t.Errorf("quantum count = %d, want 2", counts["quantum"])
	}
}
