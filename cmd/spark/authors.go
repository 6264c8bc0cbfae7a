package main

import (
	"fmt"

	"github.com/impactspark/impactspark/internal/authors"
	"github.com/spf13/cobra"
)

var (
	authorsMinPapers int
	authorsTop       int
	authorsMatrix    bool
)

func init() {
	authorsCmd.Flags().IntVar(&authorsMinPapers, "min-papers", 0, "Minimum papers for the impact table (default from config)")
	authorsCmd.Flags().IntVar(&authorsTop, "top", 0, "Size of the frequency-ranked table (default 20)")
	authorsCmd.Flags().BoolVar(&authorsMatrix, "matrix", false, "Include the collaboration matrix")
	rootCmd.AddCommand(authorsCmd)
}

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Compute per-author impact statistics",
	Long: `Compute per-author paper counts, citation totals, and h-indexes,
plus a frequency-ranked author table with institutions. With --matrix,
also emit the co-authorship pair-count matrix over significant authors.`,
	RunE: runAuthors,
}

// AuthorsResult is the response for the authors command.
type AuthorsResult struct {
	Significant   []authors.AuthorStats `json:"significant"`
	TopByPapers   []authors.AuthorStats `json:"top_by_papers"`
	Collaboration *authors.CollabMatrix `json:"collaboration,omitempty"`
}

func runAuthors(cmd *cobra.Command, args []string) error {
	wsRoot := mustFindWorkspace()
	cfg := mustLoadConfig(wsRoot)
	records := mustLoadRecords(wsRoot)

	minPapers := authorsMinPapers
	if minPapers <= 0 {
		minPapers = cfg.MinAuthorPapers
	}

	result := AuthorsResult{
		Significant: authors.Analyze(records, minPapers),
		TopByPapers: authors.TopByFrequency(records, authorsTop),
	}
	if authorsMatrix {
		m := authors.Collaboration(records, authors.SignificantAuthors(result.Significant))
		result.Collaboration = &m
	}

	if !humanOutput {
		outputJSON(result)
		return nil
	}

	if len(result.Significant) == 0 {
		fmt.Printf("No authors with at least %d papers\n", minPapers)
	} else {
		fmt.Printf("Authors with at least %d papers:\n\n", minPapers)
		for _, a := range result.Significant {
			fmt.Printf("  %-30s  %3d papers  %6d citations  h=%d\n",
				truncateString(a.Author, 30), a.PaperCount, a.TotalCitations, a.HIndex)
		}
	}

	if result.Collaboration != nil && len(result.Collaboration.Authors) > 0 {
		fmt.Println("\nCollaboration pairs:")
		m := result.Collaboration
		for i := range m.Authors {
			for j := i + 1; j < len(m.Authors); j++ {
				if m.Counts[i][j] > 0 {
					fmt.Printf("  %s + %s: %d\n", m.Authors[i], m.Authors[j], m.Counts[i][j])
				}
			}
		}
	}

	return nil
}
