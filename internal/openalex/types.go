// Package openalex provides a rate-limited client for the OpenAlex works
// API and the normalizer that maps its responses to publication records.
package openalex

// Work is the subset of an OpenAlex work object the normalizer consumes.
type Work struct {
	Title                 string           `json:"title"`
	PublicationYear       int              `json:"publication_year"`
	PublicationDate       string           `json:"publication_date"`
	CitedByCount          int              `json:"cited_by_count"`
	DOI                   string           `json:"doi"`
	Type                  string           `json:"type"`
	FWCI                  float64          `json:"fwci"`
	AbstractInvertedIndex map[string][]int `json:"abstract_inverted_index"`

	Authorships []Authorship `json:"authorships"`

	PrimaryLocation struct {
		Source struct {
			DisplayName string `json:"display_name"`
		} `json:"source"`
	} `json:"primary_location"`

	HostVenue struct {
		DisplayName string `json:"display_name"`
	} `json:"host_venue"`

	Concepts []struct {
		DisplayName string  `json:"display_name"`
		Score       float64 `json:"score"`
	} `json:"concepts"`

	Keywords []struct {
		DisplayName string `json:"display_name"`
	} `json:"keywords"`

	PrimaryTopic struct {
		Domain struct {
			DisplayName string `json:"display_name"`
		} `json:"domain"`
	} `json:"primary_topic"`

	OpenAccess struct {
		IsOA bool `json:"is_oa"`
	} `json:"open_access"`
}

// Authorship is one author credit on a work.
type Authorship struct {
	Author struct {
		DisplayName string `json:"display_name"`
	} `json:"author"`
	Institutions []struct {
		DisplayName string `json:"display_name"`
		CountryCode string `json:"country_code"`
	} `json:"institutions"`
}

// WorksResponse is the paginated works listing envelope.
type WorksResponse struct {
	Meta struct {
		Count   int `json:"count"`
		Page    int `json:"page"`
		PerPage int `json:"per_page"`
	} `json:"meta"`
	Results []Work `json:"results"`
}
