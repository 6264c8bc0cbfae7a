// Package main provides the spark CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	// A missing .env file is fine; environment wins over file values.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spark",
	Short: "Scholarly impact analytics toolkit",
	Long: `spark fetches publication records from OpenAlex and computes
bibliometric impact indicators: citation statistics (h-index, i10,
g-index, percentiles), temporal trends, author and collaboration
statistics, keyword statistics, and content-similarity rankings.

Records are stored in a git-versionable JSONL workspace with an
ephemeral SQLite database for fast queries. All commands output JSON
by default for easy integration with other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getWorkRoot returns the starting directory for workspace discovery.
func getWorkRoot() (string, int) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}

	// Check SPARK_ROOT environment variable first
	if root := os.Getenv("SPARK_ROOT"); root != "" {
		cwd = root
	}

	return cwd, 0
}
