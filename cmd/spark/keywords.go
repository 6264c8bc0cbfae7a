package main

import (
	"fmt"

	"github.com/impactspark/impactspark/internal/keywords"
	"github.com/spf13/cobra"
)

var (
	keywordsMinPapers int
	keywordsTrendTop  int
	keywordsCooccur   bool
)

func init() {
	keywordsCmd.Flags().IntVar(&keywordsMinPapers, "min-papers", 0, "Minimum papers for the impact table (default from config)")
	keywordsCmd.Flags().IntVar(&keywordsTrendTop, "trend-top", 0, "Keywords tracked in the trend series (default 20)")
	keywordsCmd.Flags().BoolVar(&keywordsCooccur, "cooccur", false, "Include the co-occurrence matrix")
	rootCmd.AddCommand(keywordsCmd)
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Compute keyword frequency, impact, and trends",
	Long: `Compute keyword frequency counts, per-keyword citation impact, and
yearly trend series. When no record carries explicit keywords, frequent
title terms are reported instead (frequency only).`,
	RunE: runKeywords,
}

// KeywordsResult is the response for the keywords command.
type KeywordsResult struct {
	keywords.Result
	Cooccurrence *keywords.CooccurMatrix `json:"cooccurrence,omitempty"`
}

func runKeywords(cmd *cobra.Command, args []string) error {
	wsRoot := mustFindWorkspace()
	cfg := mustLoadConfig(wsRoot)
	records := mustLoadRecords(wsRoot)

	opts := keywords.Options{
		MinPapers: keywordsMinPapers,
		TrendTopN: keywordsTrendTop,
	}
	if opts.MinPapers <= 0 {
		opts.MinPapers = cfg.MinKeywordPapers
	}
	if opts.TrendTopN <= 0 {
		opts.TrendTopN = cfg.TrendTopKeywords
	}

	result := KeywordsResult{Result: keywords.Analyze(records, opts)}
	if keywordsCooccur && !result.FromTitles {
		m := keywords.Cooccurrence(records, keywords.TopKeywords(result.Frequency, 0))
		result.Cooccurrence = &m
	}

	if !humanOutput {
		outputJSON(result)
		return nil
	}

	if result.FromTitles {
		fmt.Println("No explicit keywords found; showing frequent title terms:")
	} else {
		fmt.Println("Keyword frequency:")
	}
	for i, kc := range result.Frequency {
		if i >= 25 {
			fmt.Printf("  ... and %d more\n", len(result.Frequency)-i)
			break
		}
		fmt.Printf("  %-30s %d\n", kc.Keyword, kc.Frequency)
	}

	if len(result.Impact) > 0 {
		fmt.Println("\nKeyword impact (by avg citations):")
		for _, ks := range result.Impact {
			fmt.Printf("  %-30s %3d papers  avg %.1f\n", ks.Keyword, ks.PaperCount, ks.AvgCitations)
		}
	}

	return nil
}
