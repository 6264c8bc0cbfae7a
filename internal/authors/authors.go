// Package authors computes per-author impact statistics and co-authorship
// patterns from a publication batch.
package authors

import (
	"sort"

	"github.com/impactspark/impactspark/internal/metrics"
	"github.com/impactspark/impactspark/internal/record"
)

// DefaultMinPapers is the minimum record count for an author to appear in
// the impact table and the collaboration matrix.
const DefaultMinPapers = 2

// DefaultTopN is the default size of the frequency-ranked author table.
const DefaultTopN = 20

// AuthorStats holds the impact metrics for one author.
type AuthorStats struct {
	Author         string   `json:"author"`
	PaperCount     int      `json:"paper_count"`
	TotalCitations int      `json:"total_citations"`
	AvgCitations   float64  `json:"avg_citations"`
	HIndex         int      `json:"h_index"`
	Institutions   []string `json:"institutions,omitempty"`
}

// Index maps each author name to the indices of the records crediting them.
//
// Names are compared by exact trimmed string match. A name repeated within a
// single record's author list is not deduplicated: the record index appears
// once per occurrence, inflating that author's apparent paper count. This
// mirrors the system being replaced and is kept until product intent says
// otherwise.
type Index map[string][]int

// BuildIndex scans the batch and builds the author → record-index arena.
// Records with a blank authors field are skipped entirely.
func BuildIndex(records []record.Record) Index {
	idx := make(Index)
	for i := range records {
		for _, name := range record.SplitList(records[i].Authors) {
			idx[name] = append(idx[name], i)
		}
	}
	return idx
}

// Analyze folds the author index into per-author impact statistics,
// keeping only authors credited on at least minPapers records (values < 1
// fall back to DefaultMinPapers). Results are ordered by paper count
// descending, ties broken by name for stable output.
func Analyze(records []record.Record, minPapers int) []AuthorStats {
	if minPapers < 1 {
		minPapers = DefaultMinPapers
	}

	idx := BuildIndex(records)
	stats := make([]AuthorStats, 0, len(idx))
	for name, recIdx := range idx {
		if len(recIdx) < minPapers {
			continue
		}
		stats = append(stats, fold(name, recIdx, records))
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].PaperCount != stats[j].PaperCount {
			return stats[i].PaperCount > stats[j].PaperCount
		}
		return stats[i].Author < stats[j].Author
	})
	return stats
}

// TopByFrequency returns the n most frequently credited authors regardless
// of any minimum-paper threshold, with institution sets attached. Used for
// detailed top-author views where a hard cutoff would hide long-tail names.
func TopByFrequency(records []record.Record, n int) []AuthorStats {
	if n <= 0 {
		n = DefaultTopN
	}

	idx := BuildIndex(records)
	stats := make([]AuthorStats, 0, len(idx))
	for name, recIdx := range idx {
		s := fold(name, recIdx, records)
		s.Institutions = institutionsFor(recIdx, records)
		stats = append(stats, s)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].PaperCount != stats[j].PaperCount {
			return stats[i].PaperCount > stats[j].PaperCount
		}
		return stats[i].Author < stats[j].Author
	})

	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// fold computes one author's stats from their record index list.
func fold(name string, recIdx []int, records []record.Record) AuthorStats {
	citations := make([]int, len(recIdx))
	total := 0
	for i, ri := range recIdx {
		c := record.CoerceCitations(records[ri].Citations)
		citations[i] = c
		total += c
	}

	cs := metrics.Calculate(citations, metrics.DefaultPercentiles)
	return AuthorStats{
		Author:         name,
		PaperCount:     len(recIdx),
		TotalCitations: total,
		AvgCitations:   float64(total) / float64(len(recIdx)),
		HIndex:         cs.HIndex,
	}
}

// institutionsFor collects the distinct institutions across an author's
// records, sorted for stable output.
func institutionsFor(recIdx []int, records []record.Record) []string {
	seen := make(map[string]bool)
	var insts []string
	for _, ri := range recIdx {
		for _, inst := range record.SplitList(records[ri].Institutions) {
			if !seen[inst] {
				seen[inst] = true
				insts = append(insts, inst)
			}
		}
	}
	sort.Strings(insts)
	return insts
}
