package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/impactspark/impactspark/internal/record"
)

func testScraper() *Scraper {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewScraper(log)
}

func TestExtractDOI(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"doi.org link", "https://doi.org/10.1038/s41586-021-03819-2", "10.1038/s41586-021-03819-2"},
		{"publisher url with doi", "https://journals.example.org/article/10.1234/abcd.5678", "10.1234/abcd.5678"},
		{"no doi", "https://example.org/about", ""},
		{"bare doi", "10.1000/xyz123", "10.1000/xyz123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDOI(tt.url); got != tt.want {
				t.Errorf("ExtractDOI(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestPageText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><style>p{color:red}</style></head><body>
			<script>var x = "ignore me";</script>
			<p>First paragraph.</p>
			<p>Second paragraph.</p>
		</body></html>`)
	}))
	defer srv.Close()

	got := testScraper().PageText(context.Background(), srv.URL)
	if !strings.Contains(got, "First paragraph.") || !strings.Contains(got, "Second paragraph.") {
		t.Errorf("PageText = %q", got)
	}
	if strings.Contains(got, "ignore me") || strings.Contains(got, "color:red") {
		t.Errorf("script/style leaked into text: %q", got)
	}
}

func TestPageTextBodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div>No paragraphs here</div></body></html>`)
	}))
	defer srv.Close()

	got := testScraper().PageText(context.Background(), srv.URL)
	if got != "No paragraphs here" {
		t.Errorf("PageText = %q", got)
	}
}

func TestPageTextErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if got := testScraper().PageText(context.Background(), srv.URL); got != "" {
		t.Errorf("PageText on 404 = %q, want empty", got)
	}
}

func TestEnrichAbstracts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>Scraped abstract text.</p></body></html>`)
	}))
	defer srv.Close()

	records := []record.Record{
		{Title: "Needs abstract", DOI: srv.URL + "/work1"},
		{Title: "Already has one", DOI: srv.URL + "/work2", Abstract: "existing"},
		{Title: "No DOI"},
	}

	filled, err := testScraper().EnrichAbstracts(context.Background(), records, 0)
	if err != nil {
		t.Fatalf("EnrichAbstracts: %v", err)
	}
	if filled != 1 {
		t.Errorf("filled = %d, want 1", filled)
	}
	if records[0].Abstract != "Scraped abstract text." {
		t.Errorf("abstract = %q", records[0].Abstract)
	}
	if records[1].Abstract != "existing" {
		t.Errorf("existing abstract overwritten: %q", records[1].Abstract)
	}
	if records[2].Abstract != "" {
		t.Errorf("record without DOI got abstract %q", records[2].Abstract)
	}
}

func TestEnrichAbstractsTruncates(t *testing.T) {
	long := strings.Repeat("x", AbstractMaxLen*2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body><p>%s</p></body></html>`, long)
	}))
	defer srv.Close()

	records := []record.Record{{Title: "Long", DOI: srv.URL}}
	if _, err := testScraper().EnrichAbstracts(context.Background(), records, 0); err != nil {
		t.Fatal(err)
	}
	if len(records[0].Abstract) != AbstractMaxLen {
		t.Errorf("abstract length = %d, want %d", len(records[0].Abstract), AbstractMaxLen)
	}
}

func TestEnrichAbstractsMaxItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>Text.</p></body></html>`)
	}))
	defer srv.Close()

	records := []record.Record{
		{Title: "A", DOI: srv.URL + "/a"},
		{Title: "B", DOI: srv.URL + "/b"},
	}

	filled, err := testScraper().EnrichAbstracts(context.Background(), records, 1)
	if err != nil {
		t.Fatal(err)
	}
	if filled != 1 {
		t.Errorf("filled = %d, want 1", filled)
	}
	if records[1].Abstract != "" {
		t.Error("record past the limit was processed")
	}
}

func TestRelatedDOIs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<p>See https://doi.org/10.1000/one and https://doi.org/10.1000/two
			and again https://doi.org/10.1000/one</p>
		</body></html>`)
	}))
	defer srv.Close()

	links, err := testScraper().RelatedDOIs(context.Background(), srv.URL, 5)
	if err != nil {
		t.Fatalf("RelatedDOIs: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2: %v", len(links), links)
	}
	if links[0] != "https://doi.org/10.1000/one" || links[1] != "https://doi.org/10.1000/two" {
		t.Errorf("links = %v", links)
	}
}
