package main

import (
	"fmt"
	"os"

	"github.com/impactspark/impactspark/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new spark workspace",
	Long: `Initialize a new spark workspace in the current directory.

Creates:
  .impactspark/
  ├── records.jsonl   # Empty file
  ├── config.json     # Empty config; unset values inherit global config
  └── cache/          # Empty directory (gitignored)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getWorkRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsWorkspace(root) {
		exitWithError(ExitError, "directory already contains a spark workspace")
	}

	if err := os.MkdirAll(config.SparkPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .impactspark directory: %v", err)
	}
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	recordsFile, err := os.Create(config.RecordsPath(root))
	if err != nil {
		exitWithError(ExitError, "creating records.jsonl: %v", err)
	}
	recordsFile.Close()

	// An empty config: values the workspace never sets inherit from the
	// global config and the engine defaults at load time.
	cfg := config.Config{}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "creating config.json: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized spark workspace in %s\n", root)
	} else {
		outputJSON(StatusResponse{
			Status: "initialized",
			Path:   root,
		})
	}

	return nil
}
