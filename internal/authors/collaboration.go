package authors

import "github.com/impactspark/impactspark/internal/record"

// CollabMatrix is a symmetric co-authorship count matrix over a fixed
// author set. Counts[i][j] is the number of records on which Authors[i] and
// Authors[j] appear together; the diagonal is always zero (an author does
// not co-author with themself in this model).
type CollabMatrix struct {
	Authors []string `json:"authors"`
	Counts  [][]int  `json:"counts"`
}

// Collaboration builds the co-authorship matrix restricted to the given
// author set (typically the significant authors from Analyze). For every
// record, each unordered pair of distinct listed authors that are both in
// the set increments the pair's two symmetric cells by one.
func Collaboration(records []record.Record, authorSet []string) CollabMatrix {
	m := CollabMatrix{
		Authors: authorSet,
		Counts:  make([][]int, len(authorSet)),
	}
	for i := range m.Counts {
		m.Counts[i] = make([]int, len(authorSet))
	}

	pos := make(map[string]int, len(authorSet))
	for i, name := range authorSet {
		pos[name] = i
	}

	for ri := range records {
		names := record.SplitList(records[ri].Authors)

		// Keep only authors in the tracked set, preserving order.
		var present []int
		for _, name := range names {
			if idx, ok := pos[name]; ok {
				present = append(present, idx)
			}
		}

		for a := 0; a < len(present); a++ {
			for b := a + 1; b < len(present); b++ {
				i, j := present[a], present[b]
				if i == j {
					continue // Same author listed twice; never a self-pair
				}
				m.Counts[i][j]++
				m.Counts[j][i]++
			}
		}
	}
	return m
}

// SignificantAuthors extracts the author names from an impact table, in
// table order, for use as a collaboration matrix axis.
func SignificantAuthors(stats []AuthorStats) []string {
	names := make([]string, len(stats))
	for i, s := range stats {
		names[i] = s.Author
	}
	return names
}
