package keywords

import "github.com/impactspark/impactspark/internal/record"

// CooccurMatrix is a symmetric keyword co-occurrence count matrix over a
// fixed keyword set. Counts[i][j] is the number of records on which
// Keywords[i] and Keywords[j] appear together; the diagonal stays zero.
type CooccurMatrix struct {
	Keywords []string `json:"keywords"`
	Counts   [][]int  `json:"counts"`
}

// Cooccurrence builds the co-occurrence matrix restricted to the given
// keyword set (typically the top keywords by frequency). The pairwise
// increment pattern matches the author collaboration matrix.
func Cooccurrence(records []record.Record, keywordSet []string) CooccurMatrix {
	m := CooccurMatrix{
		Keywords: keywordSet,
		Counts:   make([][]int, len(keywordSet)),
	}
	for i := range m.Counts {
		m.Counts[i] = make([]int, len(keywordSet))
	}

	pos := make(map[string]int, len(keywordSet))
	for i, kw := range keywordSet {
		pos[kw] = i
	}

	for ri := range records {
		var present []int
		for _, kw := range record.SplitList(records[ri].Keywords) {
			if idx, ok := pos[kw]; ok {
				present = append(present, idx)
			}
		}

		for a := 0; a < len(present); a++ {
			for b := a + 1; b < len(present); b++ {
				i, j := present[a], present[b]
				if i == j {
					continue
				}
				m.Counts[i][j]++
				m.Counts[j][i]++
			}
		}
	}
	return m
}

// TopKeywords returns the n most frequent keyword names from a frequency
// table, for use as a co-occurrence matrix axis.
func TopKeywords(frequency []KeywordCount, n int) []string {
	if n <= 0 {
		n = DefaultCooccurTop
	}
	if len(frequency) > n {
		frequency = frequency[:n]
	}
	names := make([]string, len(frequency))
	for i, kc := range frequency {
		names[i] = kc.Keyword
	}
	return names
}
