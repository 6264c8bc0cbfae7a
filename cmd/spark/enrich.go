package main

import (
	"context"
	"fmt"

	"github.com/impactspark/impactspark/internal/config"
	"github.com/impactspark/impactspark/internal/scrape"
	"github.com/impactspark/impactspark/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var enrichMax int

func init() {
	enrichCmd.Flags().IntVar(&enrichMax, "max", 0, "Maximum records to process (0 = all)")
	rootCmd.AddCommand(enrichCmd)
}

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Backfill missing abstracts from publication pages",
	Long: `Scrape each record's DOI landing page to fill in missing abstracts.
Records that already have an abstract, or have no DOI, are skipped.
Existing abstracts are never overwritten.

Examples:
  spark enrich
  spark enrich --max 50`,
	RunE: runEnrich,
}

// EnrichResult is the response for the enrich command.
type EnrichResult struct {
	Status    string `json:"status"`
	Processed int    `json:"processed"`
	Filled    int    `json:"filled"`
}

func runEnrich(cmd *cobra.Command, args []string) error {
	wsRoot := mustFindWorkspace()
	records := mustLoadRecords(wsRoot)

	log := logrus.New()
	if !humanOutput {
		log.SetLevel(logrus.WarnLevel)
	}

	scraper := scrape.NewScraper(log)
	filled, err := scraper.EnrichAbstracts(context.Background(), records, enrichMax)
	if err != nil {
		exitWithError(ExitError, "enriching abstracts: %v", err)
	}

	if filled > 0 {
		if err := storage.WriteAll(config.RecordsPath(wsRoot), records); err != nil {
			exitWithError(ExitDataError, "writing records: %v", err)
		}
		db := mustOpenDatabase(wsRoot)
		defer db.Close()
		if _, err := db.RebuildFromJSONL(config.RecordsPath(wsRoot)); err != nil {
			exitWithError(ExitDataError, "rebuilding database: %v", err)
		}
	}

	processed := len(records)
	if enrichMax > 0 && enrichMax < processed {
		processed = enrichMax
	}

	if humanOutput {
		fmt.Printf("Processed %d records, filled %d abstracts\n", processed, filled)
	} else {
		outputJSON(EnrichResult{
			Status:    "enriched",
			Processed: processed,
			Filled:    filled,
		})
	}

	return nil
}
