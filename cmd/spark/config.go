package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/impactspark/impactspark/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set workspace configuration values",
	Long: `Get or set workspace configuration values.

Usage:
  spark config                          # Show all config
  spark config mailto                   # Get specific value
  spark config mailto me@example.org    # Set value
  spark config min-author-papers 3      # Set analysis threshold

Keys:
  mailto              OpenAlex polite-pool contact email
  min-author-papers   Minimum papers for the author impact table
  min-keyword-papers  Minimum papers for the keyword impact table
  trend-top-keywords  Keywords tracked in trend series
  similar-count       Default similar-work count`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	wsRoot := mustFindWorkspace()

	cfg, err := config.Load(wsRoot)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// Reads show effective values: workspace over global over defaults.
	eff := config.Effective(cfg)

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("mailto:             %s\n", eff.Mailto)
			fmt.Printf("min-author-papers:  %d\n", eff.MinAuthorPapers)
			fmt.Printf("min-keyword-papers: %d\n", eff.MinKeywordPapers)
			fmt.Printf("trend-top-keywords: %d\n", eff.TrendTopKeywords)
			fmt.Printf("similar-count:      %d\n", eff.SimilarCount)
		} else {
			outputJSON(eff)
		}
		return nil
	}

	key := normalizeKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		value, ok := configValue(&eff, key)
		if !ok {
			exitWithError(ExitError, "unknown configuration key: %s", args[0])
		}
		if humanOutput {
			fmt.Println(value)
		} else {
			outputJSON(map[string]string{key: value})
		}
		return nil
	}

	// Two args: set value
	value := args[1]
	switch key {
	case "mailto":
		cfg.Mailto = value
	case "min-author-papers":
		cfg.MinAuthorPapers = mustParsePositive(key, value)
	case "min-keyword-papers":
		cfg.MinKeywordPapers = mustParsePositive(key, value)
	case "trend-top-keywords":
		cfg.TrendTopKeywords = mustParsePositive(key, value)
	case "similar-count":
		cfg.SimilarCount = mustParsePositive(key, value)
	default:
		exitWithError(ExitError, "unknown configuration key: %s", args[0])
	}

	if err := cfg.Save(wsRoot); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{
			Status: "updated",
			Key:    key,
			Value:  value,
		})
	}

	return nil
}

func configValue(cfg *config.Config, key string) (string, bool) {
	switch key {
	case "mailto":
		return cfg.Mailto, true
	case "min-author-papers":
		return strconv.Itoa(cfg.MinAuthorPapers), true
	case "min-keyword-papers":
		return strconv.Itoa(cfg.MinKeywordPapers), true
	case "trend-top-keywords":
		return strconv.Itoa(cfg.TrendTopKeywords), true
	case "similar-count":
		return strconv.Itoa(cfg.SimilarCount), true
	}
	return "", false
}

func mustParsePositive(key, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		exitWithError(ExitError, "%s must be a positive integer, got %q", key, value)
	}
	return n
}

// normalizeKey accepts underscore keys (min_author_papers) and converts
// them to the dashed form used above.
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
