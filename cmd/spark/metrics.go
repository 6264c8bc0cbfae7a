package main

import (
	"fmt"

	"github.com/impactspark/impactspark/internal/metrics"
	"github.com/impactspark/impactspark/internal/record"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(metricsCmd)
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Compute citation impact metrics",
	Long: `Compute citation impact metrics for the workspace batch: totals,
h-index, i10-index, g-index, citation percentiles, distribution summary,
and citation range counts.`,
	RunE: runMetrics,
}

// MetricsResult is the response for the metrics command.
type MetricsResult struct {
	Stats        metrics.CitationStats       `json:"stats"`
	Distribution metrics.DistributionSummary `json:"distribution"`
	Ranges       []metrics.RangeBucket       `json:"ranges"`
}

func runMetrics(cmd *cobra.Command, args []string) error {
	wsRoot := mustFindWorkspace()
	cfg := mustLoadConfig(wsRoot)
	records := mustLoadRecords(wsRoot)

	citations := record.Citations(records)
	result := MetricsResult{
		Stats:        metrics.Calculate(citations, cfg.Percentiles),
		Distribution: metrics.Summary(citations),
		Ranges:       metrics.RangeBuckets(citations),
	}

	if !humanOutput {
		outputJSON(result)
		return nil
	}

	s := result.Stats
	fmt.Printf("Publications:    %d\n", s.TotalPublications)
	fmt.Printf("Total citations: %d\n", s.TotalCitations)
	fmt.Printf("Avg citations:   %.2f\n", s.AvgCitations)
	fmt.Printf("h-index:         %d\n", s.HIndex)
	fmt.Printf("i10-index:       %d\n", s.I10Index)
	fmt.Printf("g-index:         %d\n", s.GIndex)

	if len(s.Percentiles) > 0 {
		fmt.Println("\nCitation percentiles:")
		for _, p := range s.Percentiles {
			fmt.Printf("  p%-4.0f %.1f\n", p.Percentile, p.Value)
		}
	}

	d := result.Distribution
	fmt.Printf("\nDistribution: mean %.2f, median %.1f, std %.2f, range %d-%d\n",
		d.Mean, d.Median, d.StdDev, d.Min, d.Max)

	fmt.Println("\nCitation ranges:")
	for _, b := range result.Ranges {
		fmt.Printf("  %-8s %d\n", b.Label, b.Count)
	}

	return nil
}
