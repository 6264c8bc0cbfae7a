// Package metrics computes scalar and distributional citation impact
// indicators from a vector of citation counts.
package metrics

import (
	"math"
	"sort"
)

// DefaultPercentiles is the standard percentile set for citation
// distributions.
var DefaultPercentiles = []float64{10, 25, 50, 75, 90, 95, 99}

// PercentilePoint is one (percentile, value) pair of a citation
// distribution. Points are emitted in ascending percentile order.
type PercentilePoint struct {
	Percentile float64 `json:"percentile"`
	Value      float64 `json:"value"`
}

// CitationStats holds the impact indicators derived from one citation
// vector. It is a pure derived value: recomputed from scratch on every call,
// never cached or updated incrementally.
type CitationStats struct {
	TotalPublications int               `json:"total_publications"`
	TotalCitations    int               `json:"total_citations"`
	AvgCitations      float64           `json:"avg_citations"`
	HIndex            int               `json:"h_index"`
	I10Index          int               `json:"i10_index"`
	GIndex            int               `json:"g_index"`
	Percentiles       []PercentilePoint `json:"citation_percentiles"`
}

// Calculate computes the full indicator set for a citation vector using the
// given percentile list (nil means DefaultPercentiles). An empty vector
// yields an all-zero result with no percentile points.
func Calculate(citations []int, percentiles []float64) CitationStats {
	if percentiles == nil {
		percentiles = DefaultPercentiles
	}
	if len(citations) == 0 {
		return CitationStats{}
	}

	sorted := sortedDescending(citations)

	total := 0
	for _, c := range sorted {
		total += c
	}

	stats := CitationStats{
		TotalPublications: len(sorted),
		TotalCitations:    total,
		AvgCitations:      float64(total) / float64(len(sorted)),
		HIndex:            hIndex(sorted),
		I10Index:          i10Index(sorted),
		GIndex:            gIndex(sorted),
	}

	for _, p := range percentiles {
		stats.Percentiles = append(stats.Percentiles, PercentilePoint{
			Percentile: p,
			Value:      Percentile(citations, p),
		})
	}

	return stats
}

// hIndex returns the largest rank i (1-based) such that the i-th largest
// count is at least i. Input must be sorted descending.
func hIndex(sorted []int) int {
	h := 0
	for i, c := range sorted {
		if c >= i+1 {
			h = i + 1
		} else {
			break
		}
	}
	return h
}

// i10Index counts entries with at least 10 citations. Input must be sorted
// descending.
func i10Index(sorted []int) int {
	n := 0
	for _, c := range sorted {
		if c < 10 {
			break
		}
		n++
	}
	return n
}

// gIndex walks the descending counts accumulating a running sum and returns
// the largest rank i whose cumulative sum is at least i², stopping at the
// first rank that fails the test. Ranks past the first failure are never
// reconsidered, even when the cumulative sum would satisfy a later i².
func gIndex(sorted []int) int {
	g := 0
	cumulative := 0
	for i, c := range sorted {
		cumulative += c
		if cumulative >= (i+1)*(i+1) {
			g = i + 1
		} else {
			break
		}
	}
	return g
}

// Percentile computes the p-th percentile of a citation vector using linear
// interpolation between closest ranks. Returns 0 for an empty vector.
func Percentile(citations []int, p float64) float64 {
	if len(citations) == 0 {
		return 0
	}
	asc := make([]int, len(citations))
	copy(asc, citations)
	sort.Ints(asc)

	if p <= 0 {
		return float64(asc[0])
	}
	if p >= 100 {
		return float64(asc[len(asc)-1])
	}

	rank := p / 100 * float64(len(asc)-1)
	lower := int(math.Floor(rank))
	frac := rank - float64(lower)
	if lower+1 >= len(asc) {
		return float64(asc[lower])
	}
	return float64(asc[lower]) + frac*float64(asc[lower+1]-asc[lower])
}

// sortedDescending returns a descending-sorted copy of the input.
func sortedDescending(citations []int) []int {
	sorted := make([]int, len(citations))
	copy(sorted, citations)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return sorted
}
