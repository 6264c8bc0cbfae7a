package main

import (
	"fmt"

	"github.com/impactspark/impactspark/internal/record"
	"github.com/impactspark/impactspark/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listLimit        int
	listYearFrom     int
	listYearTo       int
	listMinCitations int
	listOpenAccess   bool
)

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = all)")
	listCmd.Flags().IntVar(&listYearFrom, "year-from", 0, "Earliest publication year")
	listCmd.Flags().IntVar(&listYearTo, "year-to", 0, "Latest publication year")
	listCmd.Flags().IntVar(&listMinCitations, "min-citations", 0, "Minimum citation count")
	listCmd.Flags().BoolVar(&listOpenAccess, "open-access", false, "Only open-access works")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List works in the workspace",
	Long: `List works in the workspace, most cited first.

Examples:
  spark list
  spark list --year-from 2020 --min-citations 10 --limit 25`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	wsRoot := mustFindWorkspace()
	db := mustOpenDatabase(wsRoot)
	defer db.Close()

	works, err := db.List(storage.ListFilters{
		YearFrom:     listYearFrom,
		YearTo:       listYearTo,
		MinCitations: listMinCitations,
		OpenAccess:   listOpenAccess,
	}, listLimit)
	if err != nil {
		exitWithError(ExitError, "listing works: %v", err)
	}

	total, _ := db.Count()

	if humanOutput {
		if len(works) == 0 {
			fmt.Println("No works in workspace")
			return nil
		}
		if listLimit > 0 && listLimit < total {
			fmt.Printf("%d works (showing first %d):\n\n", total, len(works))
		} else {
			fmt.Printf("%d works:\n\n", len(works))
		}
		for i := range works {
			w := &works[i]
			year := "----"
			if w.HasDate() {
				year = fmt.Sprintf("%d", w.Year())
			}
			fmt.Printf("  %6d  %s  %s\n", w.Citations, year, truncateString(w.Title, ListTitleMaxLen))
		}
		return nil
	}

	if works == nil {
		works = []record.Record{}
	}
	outputJSON(works)
	return nil
}
