package keywords

import (
	"testing"
	"time"

	"github.com/impactspark/impactspark/internal/record"
)

func kwRecord(keywords string, citations, year int) record.Record {
	r := record.Record{Keywords: keywords, Citations: citations}
	if year > 0 {
		r.PublicationDate = time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return r
}

func TestAnalyzeFrequency(t *testing.T) {
	records := []record.Record{
		kwRecord("ml, genomics", 0, 2020),
		kwRecord("ml", 0, 2021),
		kwRecord("genomics", 0, 2021),
		kwRecord("ml", 0, 2022),
	}

	result := Analyze(records, Options{})

	if result.FromTitles {
		t.Fatal("explicit keywords present; FromTitles should be false")
	}
	if len(result.Frequency) != 2 {
		t.Fatalf("got %d frequency rows, want 2", len(result.Frequency))
	}
	if result.Frequency[0].Keyword != "ml" || result.Frequency[0].Frequency != 3 {
		t.Errorf("top keyword = %+v, want ml x3", result.Frequency[0])
	}
}

func TestAnalyzeImpactThreshold(t *testing.T) {
	records := []record.Record{
		kwRecord("ml", 10, 2020),
		kwRecord("ml", 20, 2021),
		kwRecord("ml", 30, 2022),
		kwRecord("rare", 99, 2022),
	}

	result := Analyze(records, Options{MinPapers: 3})

	if len(result.Impact) != 1 {
		t.Fatalf("got %d impact rows, want 1 (rare below threshold)", len(result.Impact))
	}
	row := result.Impact[0]
	if row.Keyword != "ml" || row.PaperCount != 3 || row.TotalCitations != 60 || row.AvgCitations != 20 {
		t.Errorf("impact row = %+v", row)
	}
}

func TestAnalyzeTrends(t *testing.T) {
	records := []record.Record{
		kwRecord("ml", 0, 2020),
		kwRecord("ml", 0, 2020),
		kwRecord("ml", 0, 2021),
		kwRecord("ml", 0, 0), // undated, excluded from trend counts
	}

	result := Analyze(records, Options{})

	if len(result.Trends) != 2 {
		t.Fatalf("got %d trend rows, want 2", len(result.Trends))
	}
	if result.Trends[0].Year != 2020 || result.Trends[0].Count != 2 {
		t.Errorf("2020 trend = %+v", result.Trends[0])
	}
	if result.Trends[1].Year != 2021 || result.Trends[1].Count != 1 {
		t.Errorf("2021 trend = %+v", result.Trends[1])
	}
}

func TestAnalyzeFallbackFromTitles(t *testing.T) {
	records := []record.Record{
		{Title: "Deep learning for protein folding"},
		{Title: "Protein structure prediction"},
		{Title: "The and for"}, // stopwords only
	}

	result := Analyze(records, Options{})

	if !result.FromTitles {
		t.Fatal("expected title fallback mode")
	}
	if len(result.Impact) != 0 || len(result.Trends) != 0 {
		t.Error("fallback mode must leave impact and trends empty")
	}

	freq := make(map[string]int)
	for _, kc := range result.Frequency {
		freq[kc.Keyword] = kc.Frequency
	}
	if freq["protein"] != 2 {
		t.Errorf("protein frequency = %d, want 2", freq["protein"])
	}
	if _, ok := freq["the"]; ok {
		t.Error("stopword 'the' should not appear")
	}
	if _, ok := freq["for"]; ok {
		t.Error("stopword 'for' should not appear")
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	result := Analyze(nil, Options{})
	if len(result.Frequency) != 0 {
		t.Errorf("expected empty frequency, got %+v", result.Frequency)
	}
	if result.FromTitles {
		t.Error("an empty batch is not title fallback mode")
	}
}

func TestCooccurrence(t *testing.T) {
	records := []record.Record{
		kwRecord("a, b", 0, 0),
		kwRecord("a, b, c", 0, 0),
		kwRecord("c", 0, 0),
	}

	m := Cooccurrence(records, []string{"a", "b", "c"})

	for i := range m.Counts {
		if m.Counts[i][i] != 0 {
			t.Errorf("diagonal [%d][%d] = %d, want 0", i, i, m.Counts[i][i])
		}
		for j := range m.Counts[i] {
			if m.Counts[i][j] != m.Counts[j][i] {
				t.Errorf("matrix not symmetric at [%d][%d]", i, j)
			}
		}
	}

	if m.Counts[0][1] != 2 {
		t.Errorf("a+b count = %d, want 2", m.Counts[0][1])
	}
	if m.Counts[1][2] != 1 {
		t.Errorf("b+c count = %d, want 1", m.Counts[1][2])
	}
}

func TestTopKeywords(t *testing.T) {
	freq := []KeywordCount{
		{Keyword: "a", Frequency: 5},
		{Keyword: "b", Frequency: 3},
		{Keyword: "c", Frequency: 1},
	}

	got := TopKeywords(freq, 2)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("TopKeywords = %v, want [a b]", got)
	}
}
