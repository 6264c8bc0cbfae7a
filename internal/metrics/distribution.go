package metrics

import (
	"math"
	"sort"
)

// DistributionSummary holds basic descriptive statistics of a citation
// vector.
type DistributionSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
}

// Summary computes descriptive statistics for a citation vector. An empty
// vector yields a zero summary.
func Summary(citations []int) DistributionSummary {
	if len(citations) == 0 {
		return DistributionSummary{}
	}

	asc := make([]int, len(citations))
	copy(asc, citations)
	sort.Ints(asc)

	total := 0
	for _, c := range asc {
		total += c
	}
	mean := float64(total) / float64(len(asc))

	var sumSq float64
	for _, c := range asc {
		d := float64(c) - mean
		sumSq += d * d
	}
	// Sample standard deviation; zero for a single observation.
	std := 0.0
	if len(asc) > 1 {
		std = math.Sqrt(sumSq / float64(len(asc)-1))
	}

	return DistributionSummary{
		Count:  len(asc),
		Mean:   mean,
		Median: Median(asc),
		StdDev: std,
		Min:    asc[0],
		Max:    asc[len(asc)-1],
	}
}

// Median returns the median of a citation vector, or 0 if empty.
// The input does not need to be sorted.
func Median(citations []int) float64 {
	if len(citations) == 0 {
		return 0
	}
	asc := make([]int, len(citations))
	copy(asc, citations)
	sort.Ints(asc)

	mid := len(asc) / 2
	if len(asc)%2 == 1 {
		return float64(asc[mid])
	}
	return float64(asc[mid-1]+asc[mid]) / 2
}

// RangeBucket is the paper count for one citation range.
type RangeBucket struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"` // -1 means unbounded
	Count int    `json:"count"`
}

// defaultRanges partitions citation counts for distribution displays.
var defaultRanges = []RangeBucket{
	{Label: "0", Min: 0, Max: 0},
	{Label: "1-5", Min: 1, Max: 5},
	{Label: "6-10", Min: 6, Max: 10},
	{Label: "11-25", Min: 11, Max: 25},
	{Label: "26-50", Min: 26, Max: 50},
	{Label: "51-100", Min: 51, Max: 100},
	{Label: "100+", Min: 101, Max: -1},
}

// RangeBuckets counts papers per citation range. The buckets partition the
// non-negative integers, so every entry lands in exactly one bucket.
func RangeBuckets(citations []int) []RangeBucket {
	buckets := make([]RangeBucket, len(defaultRanges))
	copy(buckets, defaultRanges)

	for _, c := range citations {
		if c < 0 {
			c = 0
		}
		for i := range buckets {
			if c >= buckets[i].Min && (buckets[i].Max < 0 || c <= buckets[i].Max) {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}
