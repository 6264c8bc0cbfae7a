// Package temporal aggregates publication and citation activity by year.
package temporal

import (
	"sort"

	"github.com/impactspark/impactspark/internal/metrics"
	"github.com/impactspark/impactspark/internal/record"
)

// YearMetrics holds the per-year aggregates for one publication year.
type YearMetrics struct {
	Year            int     `json:"year"`
	Publications    int     `json:"publications"`
	TotalCitations  int     `json:"total_citations"`
	AvgCitations    float64 `json:"avg_citations"`
	MedianCitations float64 `json:"median_citations"`

	// MeanVelocity is the mean of per-record citation velocity
	// (citations per year of age, age floored at 1) across the year's
	// records.
	MeanVelocity float64 `json:"mean_velocity"`
}

// CumulativePoint is one step of the running publication/citation totals.
type CumulativePoint struct {
	Year                   int `json:"year"`
	CumulativePublications int `json:"cumulative_publications"`
	CumulativeCitations    int `json:"cumulative_citations"`
}

// GrowthPoint is the year-over-year percent change in publications and
// citations. The first year has no prior year to compare against, so its
// point carries Valid=false rather than a fabricated zero.
type GrowthPoint struct {
	Year              int     `json:"year"`
	PublicationGrowth float64 `json:"publication_growth_pct"`
	CitationGrowth    float64 `json:"citation_growth_pct"`
	Valid             bool    `json:"valid"`
}

// Result bundles the time-indexed views of one record batch.
type Result struct {
	Years      []YearMetrics     `json:"years"`
	Cumulative []CumulativePoint `json:"cumulative"`
	Growth     []GrowthPoint     `json:"growth"`

	// Undated counts records excluded from the yearly series because they
	// lack a parseable publication date. They remain part of batch-wide
	// totals computed elsewhere.
	Undated int `json:"undated"`
}

// Analyze groups records by publication year and computes the per-year,
// cumulative, and growth series. Records without a usable date are counted
// in Undated and excluded from every series. Years are emitted ascending.
func Analyze(records []record.Record, currentYear int) Result {
	byYear := make(map[int][]int) // year -> citation counts
	velocities := make(map[int][]float64)
	undated := 0

	for i := range records {
		r := &records[i]
		if !r.HasDate() {
			undated++
			continue
		}
		year := r.Year()
		c := record.CoerceCitations(r.Citations)
		byYear[year] = append(byYear[year], c)

		age := currentYear - year
		if age < 1 {
			age = 1
		}
		velocities[year] = append(velocities[year], float64(c)/float64(age))
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	result := Result{Undated: undated}
	cumPubs, cumCites := 0, 0

	for _, y := range years {
		counts := byYear[y]
		total := 0
		for _, c := range counts {
			total += c
		}
		var velSum float64
		for _, v := range velocities[y] {
			velSum += v
		}

		result.Years = append(result.Years, YearMetrics{
			Year:            y,
			Publications:    len(counts),
			TotalCitations:  total,
			AvgCitations:    float64(total) / float64(len(counts)),
			MedianCitations: metrics.Median(counts),
			MeanVelocity:    velSum / float64(len(counts)),
		})

		cumPubs += len(counts)
		cumCites += total
		result.Cumulative = append(result.Cumulative, CumulativePoint{
			Year:                   y,
			CumulativePublications: cumPubs,
			CumulativeCitations:    cumCites,
		})
	}

	result.Growth = growthSeries(result.Years)
	return result
}

// growthSeries derives year-over-year percent growth from the yearly
// metrics. Percent change against a zero prior value is reported as 0.
func growthSeries(years []YearMetrics) []GrowthPoint {
	growth := make([]GrowthPoint, 0, len(years))
	for i, ym := range years {
		if i == 0 {
			growth = append(growth, GrowthPoint{Year: ym.Year})
			continue
		}
		prev := years[i-1]
		growth = append(growth, GrowthPoint{
			Year:              ym.Year,
			PublicationGrowth: percentChange(prev.Publications, ym.Publications),
			CitationGrowth:    percentChange(prev.TotalCitations, ym.TotalCitations),
			Valid:             true,
		})
	}
	return growth
}

func percentChange(from, to int) float64 {
	if from == 0 {
		return 0
	}
	return float64(to-from) / float64(from) * 100
}

// WindowStat is the average citation count for papers at least Window years
// old at analysis time.
type WindowStat struct {
	Window       int     `json:"window_years"`
	Papers       int     `json:"papers"`
	AvgCitations float64 `json:"avg_citations"`
}

// DefaultWindows are the citation windows reported by default.
var DefaultWindows = []int{1, 2, 3, 5}

// CitationWindows computes average citations per paper within fixed time
// windows after publication. A window only includes papers published at
// least that many years before currentYear; windows with no qualifying
// papers are omitted.
func CitationWindows(records []record.Record, currentYear int, windows []int) []WindowStat {
	if windows == nil {
		windows = DefaultWindows
	}

	var stats []WindowStat
	for _, w := range windows {
		total, n := 0, 0
		for i := range records {
			r := &records[i]
			if !r.HasDate() || r.Year() > currentYear-w {
				continue
			}
			total += record.CoerceCitations(r.Citations)
			n++
		}
		if n == 0 {
			continue
		}
		stats = append(stats, WindowStat{
			Window:       w,
			Papers:       n,
			AvgCitations: float64(total) / float64(n),
		})
	}
	return stats
}
