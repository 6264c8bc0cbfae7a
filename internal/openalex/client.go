package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sethgrid/pester"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	// BaseURL is the OpenAlex API base URL.
	BaseURL = "https://api.openalex.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// RateLimit is 10 requests per second per OpenAlex documentation.
	RateLimit = 10.0

	// DefaultPerPage is the page size used for works searches.
	DefaultPerPage = 200

	// DefaultMaxResults caps how many works a search fetches overall.
	DefaultMaxResults = 2000
)

// Doer executes an HTTP request. Satisfied by *http.Client and
// *pester.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a rate-limited HTTP client for the OpenAlex works API.
type Client struct {
	httpClient Doer
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(d Doer) ClientOption {
	return func(c *Client) {
		c.httpClient = d
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithMailto sets the contact email sent with every request. OpenAlex
// routes requests carrying a mailto into its faster polite pool.
func WithMailto(email string) ClientOption {
	return func(c *Client) {
		c.mailto = email
	}
}

// NewClient creates a new OpenAlex API client. Transient failures are
// retried with exponential backoff.
func NewClient(opts ...ClientOption) *Client {
	hc := pester.New()
	hc.Timeout = DefaultTimeout
	hc.MaxRetries = 3
	hc.Backoff = pester.ExponentialBackoff
	hc.RetryOnHTTP429 = true

	c := &Client{
		httpClient: hc,
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if email := os.Getenv("OPENALEX_MAILTO"); email != "" {
		c.mailto = email
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a rate-limited GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	if c.mailto != "" {
		params.Set("mailto", c.mailto)
	}

	reqURL := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.mailto != "" {
		req.Header.Set("User-Agent", fmt.Sprintf("impactspark (mailto:%s)", c.mailto))
	} else {
		req.Header.Set("User-Agent", "impactspark")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrInvalidResponse, endpoint, err)
	}
	return nil
}

// SearchOptions narrow a works search.
type SearchOptions struct {
	// FromDate and ToDate bound publication dates, YYYY-MM-DD.
	FromDate string
	ToDate   string

	// Filters are extra raw OpenAlex filter clauses, e.g. "is_oa:true".
	Filters []string

	// PerPage and MaxResults control pagination. Zero means the
	// package defaults.
	PerPage    int
	MaxResults int
}

// SearchWorks runs a full-text works search and pages through results
// until MaxResults works are collected or the listing is exhausted.
func (c *Client) SearchWorks(ctx context.Context, query string, opts SearchOptions) ([]Work, error) {
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	var filters []string
	if opts.FromDate != "" {
		filters = append(filters, "from_publication_date:"+opts.FromDate)
	}
	if opts.ToDate != "" {
		filters = append(filters, "to_publication_date:"+opts.ToDate)
	}
	filters = append(filters, opts.Filters...)

	var works []Work
	for page := 1; len(works) < maxResults; page++ {
		params := url.Values{}
		params.Set("search", query)
		params.Set("page", fmt.Sprintf("%d", page))
		params.Set("per-page", fmt.Sprintf("%d", perPage))
		if len(filters) > 0 {
			params.Set("filter", strings.Join(filters, ","))
		}

		var resp WorksResponse
		if err := c.get(ctx, "works", params, &resp); err != nil {
			return nil, err
		}
		if len(resp.Results) == 0 {
			break
		}
		works = append(works, resp.Results...)

		logrus.WithFields(logrus.Fields{
			"query":   query,
			"page":    page,
			"fetched": len(works),
			"total":   resp.Meta.Count,
		}).Info("fetched works page")

		if len(works) >= resp.Meta.Count {
			break
		}
	}

	if len(works) > maxResults {
		works = works[:maxResults]
	}
	return works, nil
}

// GetWorkByDOI fetches a single work by DOI. Accepts bare DOIs and
// https://doi.org/ URLs.
func (c *Client) GetWorkByDOI(ctx context.Context, doi string) (*Work, error) {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	if doi == "" {
		return nil, fmt.Errorf("%w: empty DOI", ErrNotFound)
	}

	var work Work
	endpoint := "works/https://doi.org/" + url.PathEscape(doi)
	if err := c.get(ctx, endpoint, nil, &work); err != nil {
		return nil, err
	}
	return &work, nil
}
