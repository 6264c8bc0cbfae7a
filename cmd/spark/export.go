package main

import (
	"fmt"
	"os"
	"time"

	"github.com/impactspark/impactspark/internal/authors"
	"github.com/impactspark/impactspark/internal/export"
	"github.com/impactspark/impactspark/internal/keywords"
	"github.com/impactspark/impactspark/internal/temporal"
	"github.com/spf13/cobra"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <records|authors|keywords|years>",
	Short: "Export records or analysis results as CSV",
	Long: `Export the record batch or derived tables in flat CSV form.

Tables:
  records    the full record batch
  authors    per-author impact statistics
  keywords   per-keyword impact statistics
  years      per-year publication and citation aggregates

Examples:
  spark export records -o records.csv
  spark export authors`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	wsRoot := mustFindWorkspace()
	cfg := mustLoadConfig(wsRoot)
	records := mustLoadRecords(wsRoot)

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			exitWithError(ExitError, "creating output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	var err error
	switch args[0] {
	case "records":
		err = export.WriteRecords(out, records)
	case "authors":
		err = export.WriteAuthorStats(out, authors.Analyze(records, cfg.MinAuthorPapers))
	case "keywords":
		result := keywords.Analyze(records, keywords.Options{
			MinPapers: cfg.MinKeywordPapers,
			TrendTopN: cfg.TrendTopKeywords,
		})
		err = export.WriteKeywordStats(out, result.Impact)
	case "years":
		result := temporal.Analyze(records, time.Now().Year())
		err = export.WriteYearlyMetrics(out, result.Years)
	default:
		exitWithError(ExitError, "unknown table: %s (want records, authors, keywords, or years)", args[0])
	}
	if err != nil {
		exitWithError(ExitDataError, "exporting %s: %v", args[0], err)
	}

	if exportOutput != "" {
		if humanOutput {
			fmt.Printf("Exported %s to %s\n", args[0], exportOutput)
		} else {
			outputJSON(StatusResponse{Status: "exported", Path: exportOutput})
		}
	}

	return nil
}
