// Package scrape pulls readable text from publication landing pages to
// backfill abstracts that an API fetch left empty.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sethgrid/pester"
	"github.com/sirupsen/logrus"

	"github.com/impactspark/impactspark/internal/record"
)

const (
	// AbstractMaxLen truncates scraped abstracts to a readable preview.
	AbstractMaxLen = 500

	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 30 * time.Second

	// requestDelay spaces requests so publisher sites are not hammered.
	requestDelay = 500 * time.Millisecond
)

// doiPattern matches a bare DOI anywhere in a URL or page.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[-._;()/:A-Za-z0-9]+`)

// doiURLPattern matches full doi.org links, used for related-work discovery.
var doiURLPattern = regexp.MustCompile(`https://doi\.org/10\.\d{4,9}/[-._;()/:A-Za-z0-9]+`)

// Scraper fetches and extracts text from publication pages.
type Scraper struct {
	httpClient *pester.Client
	log        *logrus.Logger
}

// NewScraper builds a scraper with a retrying HTTP client.
func NewScraper(log *logrus.Logger) *Scraper {
	if log == nil {
		log = logrus.StandardLogger()
	}
	hc := pester.New()
	hc.Timeout = DefaultTimeout
	hc.MaxRetries = 2
	hc.Backoff = pester.ExponentialBackoff

	return &Scraper{httpClient: hc, log: log}
}

// PageText fetches a URL and returns its visible paragraph text with
// script and style content stripped. Returns "" on any failure; a page
// that cannot be scraped is not an error worth stopping a batch for.
func (s *Scraper) PageText(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "impactspark")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.WithField("url", pageURL).WithError(err).Debug("page fetch failed")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		s.log.WithFields(logrus.Fields{"url": pageURL, "status": resp.StatusCode}).Debug("page fetch failed")
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	doc.Find("script, style, noscript").Remove()

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	}
	return strings.Join(parts, "\n")
}

// ExtractDOI pulls a DOI out of a URL, or "" when none is present.
func ExtractDOI(pageURL string) string {
	if strings.Contains(pageURL, "doi.org") {
		if idx := strings.Index(pageURL, "doi.org/"); idx >= 0 {
			return strings.TrimPrefix(pageURL[idx+len("doi.org/"):], "/")
		}
	}
	return doiPattern.FindString(pageURL)
}

// EnrichAbstracts fills missing abstracts by scraping each record's DOI
// landing page. Records with an abstract or without a DOI are skipped.
// maxItems <= 0 processes the whole batch. Returns the number of
// abstracts filled.
func (s *Scraper) EnrichAbstracts(ctx context.Context, records []record.Record, maxItems int) (int, error) {
	limit := len(records)
	if maxItems > 0 && maxItems < limit {
		limit = maxItems
	}

	filled := 0
	for i := 0; i < limit; i++ {
		if err := ctx.Err(); err != nil {
			return filled, err
		}
		if strings.TrimSpace(records[i].Abstract) != "" || strings.TrimSpace(records[i].DOI) == "" {
			continue
		}

		doiURL := records[i].DOI
		if !strings.HasPrefix(doiURL, "http") {
			doiURL = "https://doi.org/" + doiURL
		}

		time.Sleep(requestDelay)
		content := s.PageText(ctx, doiURL)
		if content == "" {
			continue
		}

		abstract := content
		if len(abstract) > AbstractMaxLen {
			abstract = abstract[:AbstractMaxLen]
		}
		records[i].Abstract = abstract
		filled++

		s.log.WithFields(logrus.Fields{
			"doi":   records[i].DOI,
			"chars": len(content),
		}).Info("scraped abstract")
	}
	return filled, nil
}

// RelatedDOIs fetches a publication page and returns up to maxLinks
// distinct doi.org links found on it, excluding the page itself.
func (s *Scraper) RelatedDOIs(ctx context.Context, pageURL string, maxLinks int) ([]string, error) {
	if maxLinks <= 0 {
		maxLinks = 5
	}

	content := s.PageText(ctx, pageURL)
	if content == "" {
		return nil, fmt.Errorf("no content at %s", pageURL)
	}

	seen := make(map[string]bool)
	var links []string
	for _, link := range doiURLPattern.FindAllString(content, -1) {
		if link == pageURL || seen[link] {
			continue
		}
		seen[link] = true
		links = append(links, link)
		if len(links) >= maxLinks {
			break
		}
	}
	return links, nil
}
