package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/impactspark/impactspark/internal/authors"
	"github.com/impactspark/impactspark/internal/keywords"
	"github.com/impactspark/impactspark/internal/record"
	"github.com/impactspark/impactspark/internal/temporal"
)

func TestWriteRecords(t *testing.T) {
	records := []record.Record{
		{
			Title:           "Deep Learning for Genomics",
			Authors:         "Smith, Jones",
			Citations:       42,
			PublicationDate: time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC),
			Keywords:        "ml, genomics",
			Abstract:        "We apply deep learning to genomic data.",
			DOI:             "10.1000/abc",
			FWCI:            1.5,
			OpenAccess:      true,
		},
		{Title: "Undated Work", Authors: "Lee"},
	}

	var buf bytes.Buffer
	if err := WriteRecords(&buf, records); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "title,authors,citations,publication_date,keywords,abstract") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "2021-03-15") {
		t.Errorf("dated row = %q", lines[1])
	}
	if !strings.Contains(lines[1], "We apply deep learning to genomic data.") {
		t.Errorf("row missing abstract: %q", lines[1])
	}
	if !strings.Contains(lines[1], "1.5") || !strings.Contains(lines[1], "true") {
		t.Errorf("row missing fwci/open_access: %q", lines[1])
	}
	if !strings.Contains(lines[2], "Undated Work,Lee,0,,") {
		t.Errorf("undated row = %q", lines[2])
	}
}

func TestWriteAuthorStats(t *testing.T) {
	stats := []authors.AuthorStats{
		{Author: "Smith", PaperCount: 4, TotalCitations: 60, AvgCitations: 15, HIndex: 3},
	}

	var buf bytes.Buffer
	if err := WriteAuthorStats(&buf, stats); err != nil {
		t.Fatalf("WriteAuthorStats: %v", err)
	}

	want := "author,paper_count,total_citations,avg_citations,h_index\nSmith,4,60,15,3\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteKeywordStats(t *testing.T) {
	stats := []keywords.KeywordStats{
		{Keyword: "genomics", PaperCount: 5, TotalCitations: 100, AvgCitations: 20},
		{Keyword: "ml", PaperCount: 3, TotalCitations: 30, AvgCitations: 10},
	}

	var buf bytes.Buffer
	if err := WriteKeywordStats(&buf, stats); err != nil {
		t.Fatalf("WriteKeywordStats: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != "genomics,5,100,20" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteYearlyMetrics(t *testing.T) {
	years := []temporal.YearMetrics{
		{Year: 2020, Publications: 2, TotalCitations: 25, AvgCitations: 12.5, MedianCitations: 12.5, MeanVelocity: 2.5},
	}

	var buf bytes.Buffer
	if err := WriteYearlyMetrics(&buf, years); err != nil {
		t.Fatalf("WriteYearlyMetrics: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "year,publications,total_citations,avg_citations,median_citations,mean_velocity" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2020,2,25,12.5,12.5,2.5" {
		t.Errorf("row = %q", lines[1])
	}
}
