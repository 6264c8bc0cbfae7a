// Package export converts records and analysis results to flat tabular
// (CSV) form.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/impactspark/impactspark/internal/authors"
	"github.com/impactspark/impactspark/internal/keywords"
	"github.com/impactspark/impactspark/internal/record"
	"github.com/impactspark/impactspark/internal/temporal"
)

// WriteRecords writes the record batch as CSV.
func WriteRecords(w io.Writer, records []record.Record) error {
	cw := csv.NewWriter(w)

	header := []string{
		"title", "authors", "citations", "publication_date", "keywords",
		"abstract", "source", "type", "doi", "institutions", "country_codes",
		"topic", "subfield", "field", "domain", "fwci", "open_access",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range records {
		r := &records[i]
		date := ""
		if r.HasDate() {
			date = r.PublicationDate.Format("2006-01-02")
		}
		row := []string{
			r.Title, r.Authors, strconv.Itoa(r.Citations), date, r.Keywords,
			r.Abstract, r.Source, r.Type, r.DOI, r.Institutions, r.CountryCodes,
			r.Topic, r.Subfield, r.Field, r.Domain,
			formatFloat(r.FWCI), strconv.FormatBool(r.OpenAccess),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteAuthorStats writes per-author statistics as CSV.
func WriteAuthorStats(w io.Writer, stats []authors.AuthorStats) error {
	cw := csv.NewWriter(w)

	header := []string{"author", "paper_count", "total_citations", "avg_citations", "h_index"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range stats {
		row := []string{
			s.Author,
			strconv.Itoa(s.PaperCount),
			strconv.Itoa(s.TotalCitations),
			formatFloat(s.AvgCitations),
			strconv.Itoa(s.HIndex),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing author row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteKeywordStats writes keyword impact statistics as CSV.
func WriteKeywordStats(w io.Writer, stats []keywords.KeywordStats) error {
	cw := csv.NewWriter(w)

	header := []string{"keyword", "paper_count", "total_citations", "avg_citations"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range stats {
		row := []string{
			s.Keyword,
			strconv.Itoa(s.PaperCount),
			strconv.Itoa(s.TotalCitations),
			formatFloat(s.AvgCitations),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing keyword row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteYearlyMetrics writes per-year aggregates as CSV, ascending by year.
func WriteYearlyMetrics(w io.Writer, years []temporal.YearMetrics) error {
	cw := csv.NewWriter(w)

	header := []string{
		"year", "publications", "total_citations",
		"avg_citations", "median_citations", "mean_velocity",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, y := range years {
		row := []string{
			strconv.Itoa(y.Year),
			strconv.Itoa(y.Publications),
			strconv.Itoa(y.TotalCitations),
			formatFloat(y.AvgCitations),
			formatFloat(y.MedianCitations),
			formatFloat(y.MeanVelocity),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing year row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
