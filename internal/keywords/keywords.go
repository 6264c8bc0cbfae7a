// Package keywords analyzes keyword/topic terms across a publication batch:
// frequency, citation impact, yearly trends, and co-occurrence.
package keywords

import (
	"sort"

	"github.com/impactspark/impactspark/internal/record"
)

// Defaults for the analysis thresholds.
const (
	DefaultMinPapers  = 3  // minimum records for a keyword impact row
	DefaultTrendTopN  = 20 // keywords tracked in the trend series
	DefaultCooccurTop = 10 // keywords in the co-occurrence matrix
)

// KeywordCount is one keyword with its global occurrence count.
type KeywordCount struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
}

// KeywordStats holds the citation impact of one keyword.
type KeywordStats struct {
	Keyword        string  `json:"keyword"`
	PaperCount     int     `json:"paper_count"`
	TotalCitations int     `json:"total_citations"`
	AvgCitations   float64 `json:"avg_citations"`
}

// KeywordTrend is the record count for one keyword in one year.
type KeywordTrend struct {
	Keyword string `json:"keyword"`
	Year    int    `json:"year"`
	Count   int    `json:"count"`
}

// Result bundles the keyword analyses for one batch.
//
// When a non-empty batch carries no usable explicit keywords, Frequency is
// derived from title terms and FromTitles is true; Impact and Trends stay
// empty in that mode. An empty batch yields an all-empty Result with
// FromTitles false.
type Result struct {
	Frequency  []KeywordCount `json:"frequency"`
	Impact     []KeywordStats `json:"impact"`
	Trends     []KeywordTrend `json:"trends"`
	FromTitles bool           `json:"from_titles"`
}

// Options configures the keyword analysis thresholds. Zero values fall back
// to the package defaults.
type Options struct {
	MinPapers int // minimum records for an impact row
	TrendTopN int // keyword count tracked for trends
}

func (o Options) withDefaults() Options {
	if o.MinPapers < 1 {
		o.MinPapers = DefaultMinPapers
	}
	if o.TrendTopN < 1 {
		o.TrendTopN = DefaultTrendTopN
	}
	return o
}

// Analyze computes keyword frequency, impact, and trends for a batch.
// Keyword tokens follow the same comma-split rules as authors, including
// the no-intra-record-dedup quirk.
func Analyze(records []record.Record, opts Options) Result {
	opts = opts.withDefaults()

	if len(records) == 0 {
		return Result{}
	}

	idx := buildIndex(records)
	if len(idx) == 0 {
		return fallbackFromTitles(records)
	}

	result := Result{
		Frequency: frequencyTable(idx),
	}

	// Impact rows for keywords meeting the minimum paper count.
	for kw, recIdx := range idx {
		if len(recIdx) < opts.MinPapers {
			continue
		}
		total := 0
		for _, ri := range recIdx {
			total += record.CoerceCitations(records[ri].Citations)
		}
		result.Impact = append(result.Impact, KeywordStats{
			Keyword:        kw,
			PaperCount:     len(recIdx),
			TotalCitations: total,
			AvgCitations:   float64(total) / float64(len(recIdx)),
		})
	}
	sort.Slice(result.Impact, func(i, j int) bool {
		if result.Impact[i].AvgCitations != result.Impact[j].AvgCitations {
			return result.Impact[i].AvgCitations > result.Impact[j].AvgCitations
		}
		return result.Impact[i].Keyword < result.Impact[j].Keyword
	})

	// Trend counts restricted to the globally most frequent keywords.
	top := result.Frequency
	if len(top) > opts.TrendTopN {
		top = top[:opts.TrendTopN]
	}
	for _, kc := range top {
		byYear := make(map[int]int)
		for _, ri := range idx[kc.Keyword] {
			if !records[ri].HasDate() {
				continue
			}
			byYear[records[ri].Year()]++
		}
		years := make([]int, 0, len(byYear))
		for y := range byYear {
			years = append(years, y)
		}
		sort.Ints(years)
		for _, y := range years {
			result.Trends = append(result.Trends, KeywordTrend{
				Keyword: kc.Keyword,
				Year:    y,
				Count:   byYear[y],
			})
		}
	}

	return result
}

// buildIndex maps each explicit keyword to the indices of records carrying
// it. Records with a blank keywords field contribute nothing.
func buildIndex(records []record.Record) map[string][]int {
	idx := make(map[string][]int)
	for i := range records {
		for _, kw := range record.SplitList(records[i].Keywords) {
			idx[kw] = append(idx[kw], i)
		}
	}
	return idx
}

// frequencyTable flattens a keyword index into a count table ordered by
// frequency descending, ties broken by keyword for stable output.
func frequencyTable(idx map[string][]int) []KeywordCount {
	counts := make([]KeywordCount, 0, len(idx))
	for kw, recIdx := range idx {
		counts = append(counts, KeywordCount{Keyword: kw, Frequency: len(recIdx)})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Frequency != counts[j].Frequency {
			return counts[i].Frequency > counts[j].Frequency
		}
		return counts[i].Keyword < counts[j].Keyword
	})
	return counts
}
