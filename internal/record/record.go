// Package record defines the normalized publication record consumed by the
// analysis packages.
package record

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// PlaceholderTitle is used when a source supplies no title.
const PlaceholderTitle = "Untitled"

// PlaceholderAuthors is used when a source supplies no author names.
const PlaceholderAuthors = "Unknown Author"

// Record represents one normalized publication row.
//
// List-valued fields (Authors, Keywords, Institutions, CountryCodes) are
// comma-delimited display strings; use SplitList to tokenize them.
// Citations is always non-negative. A zero PublicationDate means the source
// date was missing or unparseable; such records are excluded from
// time-indexed aggregation but still counted in overall totals.
type Record struct {
	Title           string    `json:"title"`
	Authors         string    `json:"authors"`
	Citations       int       `json:"citations"`
	PublicationDate time.Time `json:"publication_date,omitempty"`
	Keywords        string    `json:"keywords,omitempty"`
	Abstract        string    `json:"abstract,omitempty"`

	// Pass-through descriptive fields, carried unchanged.
	Source       string  `json:"source,omitempty"` // Journal or venue name
	Type         string  `json:"type,omitempty"`
	DOI          string  `json:"doi,omitempty"`
	Institutions string  `json:"institutions,omitempty"`
	CountryCodes string  `json:"country_codes,omitempty"`
	Topic        string  `json:"topic,omitempty"`
	Subfield     string  `json:"subfield,omitempty"`
	Field        string  `json:"field,omitempty"`
	Domain       string  `json:"domain,omitempty"`
	FWCI         float64 `json:"fwci,omitempty"`
	OpenAccess   bool    `json:"open_access,omitempty"`
}

// HasDate reports whether the record carries a usable publication date.
func (r *Record) HasDate() bool {
	return !r.PublicationDate.IsZero()
}

// Year returns the publication year, or 0 if the date is unknown.
func (r *Record) Year() int {
	if !r.HasDate() {
		return 0
	}
	return r.PublicationDate.Year()
}

// SplitList tokenizes a comma-delimited list field: split on comma, trim
// whitespace, discard empty tokens. Repeated tokens are kept as-is; callers
// that need dedup do it themselves.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// CoerceCitations clamps a citation count to the non-negative range.
// Missing or malformed source values normalize to 0, never an error.
func CoerceCitations(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// ParseDate parses a free-form publication date string. Returns the zero
// time (not an error) when the value is empty or unparseable, matching the
// exclusion rule for time-indexed aggregation.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Citations extracts the citation vector from a batch, preserving order.
func Citations(records []Record) []int {
	counts := make([]int, len(records))
	for i := range records {
		counts[i] = CoerceCitations(records[i].Citations)
	}
	return counts
}
