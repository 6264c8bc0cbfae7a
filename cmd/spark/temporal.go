package main

import (
	"fmt"
	"time"

	"github.com/impactspark/impactspark/internal/temporal"
	"github.com/spf13/cobra"
)

var temporalWindows []int

func init() {
	temporalCmd.Flags().IntSliceVar(&temporalWindows, "windows", nil, "Citation window years (default 1,2,3,5)")
	rootCmd.AddCommand(temporalCmd)
}

var temporalCmd = &cobra.Command{
	Use:   "temporal",
	Short: "Compute publication and citation trends over time",
	Long: `Compute per-year publication and citation aggregates, cumulative
series, year-over-year growth, and citation-window averages. Records
without a parseable publication date are reported separately.`,
	RunE: runTemporal,
}

// TemporalResult is the response for the temporal command.
type TemporalResult struct {
	temporal.Result
	Windows []temporal.WindowStat `json:"citation_windows"`
}

func runTemporal(cmd *cobra.Command, args []string) error {
	wsRoot := mustFindWorkspace()
	records := mustLoadRecords(wsRoot)
	currentYear := time.Now().Year()

	result := TemporalResult{
		Result:  temporal.Analyze(records, currentYear),
		Windows: temporal.CitationWindows(records, currentYear, temporalWindows),
	}

	if !humanOutput {
		outputJSON(result)
		return nil
	}

	if len(result.Years) == 0 {
		fmt.Println("No dated records in workspace")
		if result.Undated > 0 {
			fmt.Printf("(%d records lack a parseable date)\n", result.Undated)
		}
		return nil
	}

	fmt.Println("Year   Pubs  Citations  Avg     Median  Velocity")
	for _, y := range result.Years {
		fmt.Printf("%d  %5d  %9d  %-6.1f  %-6.1f  %.2f\n",
			y.Year, y.Publications, y.TotalCitations, y.AvgCitations, y.MedianCitations, y.MeanVelocity)
	}

	fmt.Println("\nGrowth (% year over year):")
	for _, g := range result.Growth {
		if !g.Valid {
			fmt.Printf("  %d  (baseline)\n", g.Year)
			continue
		}
		fmt.Printf("  %d  pubs %+.1f%%  citations %+.1f%%\n", g.Year, g.PublicationGrowth, g.CitationGrowth)
	}

	if len(result.Windows) > 0 {
		fmt.Println("\nCitation windows:")
		for _, w := range result.Windows {
			fmt.Printf("  %dy+  %d papers, avg %.1f citations\n", w.Window, w.Papers, w.AvgCitations)
		}
	}
	if result.Undated > 0 {
		fmt.Printf("\n%d records excluded (no parseable date)\n", result.Undated)
	}

	return nil
}
