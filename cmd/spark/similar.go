package main

import (
	"fmt"
	"strconv"

	"github.com/impactspark/impactspark/internal/similarity"
	"github.com/spf13/cobra"
)

var similarCount int

func init() {
	similarCmd.Flags().IntVarP(&similarCount, "count", "n", 0, "Number of similar works to return (default from config)")
	rootCmd.AddCommand(similarCmd)
}

var similarCmd = &cobra.Command{
	Use:   "similar <index>",
	Short: "Find works similar to a target work",
	Long: `Rank all other works in the workspace by content similarity to the
work at the given batch index. Similarity is cosine distance over
term-count vectors built from abstracts, titles, and keywords,
whichever are available across the batch.

Examples:
  spark similar 12
  spark similar 12 --count 10`,
	Args: cobra.ExactArgs(1),
	RunE: runSimilar,
}

func runSimilar(cmd *cobra.Command, args []string) error {
	target, err := strconv.Atoi(args[0])
	if err != nil {
		exitWithError(ExitError, "invalid index: %s", args[0])
	}

	wsRoot := mustFindWorkspace()
	cfg := mustLoadConfig(wsRoot)
	records := mustLoadRecords(wsRoot)

	if target < 0 || target >= len(records) {
		exitWithError(ExitError, "index %d out of range (batch has %d records)", target, len(records))
	}

	n := similarCount
	if n <= 0 {
		n = cfg.SimilarCount
	}

	matches := similarity.FindSimilar(records, target, n)

	if !humanOutput {
		if matches == nil {
			matches = []similarity.Match{}
		}
		outputJSON(matches)
		return nil
	}

	if len(matches) == 0 {
		fmt.Println("No similar works found (need at least two records with text features)")
		return nil
	}

	fmt.Printf("Works similar to: %s\n\n", truncateString(records[target].Title, SimilarTitleMaxLen))
	for i, m := range matches {
		fmt.Printf("%d. [%.2f] %s\n", i+1, m.Similarity, truncateString(m.Record.Title, SimilarTitleMaxLen))
		fmt.Printf("   %s\n\n", formatAuthorsShort(m.Record.Authors, 3))
	}

	return nil
}
