package main

import (
	"fmt"

	"github.com/impactspark/impactspark/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the query layer from source data",
	Long: `Rebuild the SQLite query database from the JSONL source file.

Use this after pulling changes from git or if the database becomes corrupted.`,
	RunE: runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	wsRoot := mustFindWorkspace()
	db := mustOpenDatabase(wsRoot)
	defer db.Close()

	count, err := db.RebuildFromJSONL(config.RecordsPath(wsRoot))
	if err != nil {
		exitWithError(ExitDataError, "rebuilding database: %v", err)
	}

	if humanOutput {
		fmt.Printf("Rebuilt query database with %d records\n", count)
	} else {
		outputJSON(RebuildResult{
			Status:  "rebuilt",
			Records: count,
		})
	}

	return nil
}
