package openalex

import (
	"fmt"
	"strings"

	"github.com/impactspark/impactspark/internal/record"
)

// Normalize maps an OpenAlex work onto a flat publication record.
// Missing titles and author lists are replaced with placeholders so
// downstream grouping never keys on the empty string.
func Normalize(w Work) record.Record {
	r := record.Record{
		Citations:  record.CoerceCitations(w.CitedByCount),
		Type:       w.Type,
		FWCI:       w.FWCI,
		OpenAccess: w.OpenAccess.IsOA,
		Domain:     w.PrimaryTopic.Domain.DisplayName,
	}

	title := strings.TrimSpace(strings.ReplaceAll(w.Title, "\n", " "))
	if title == "" {
		title = record.PlaceholderTitle
	}
	r.Title = title

	var names []string
	for _, a := range w.Authorships {
		if name := a.Author.DisplayName; name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		r.Authors = record.PlaceholderAuthors
	} else {
		r.Authors = strings.Join(names, ", ")
	}

	// Institutions and country codes come from the first authorship.
	if len(w.Authorships) > 0 {
		var insts, codes []string
		for _, inst := range w.Authorships[0].Institutions {
			if inst.DisplayName != "" {
				insts = append(insts, inst.DisplayName)
			}
			if inst.CountryCode != "" {
				codes = append(codes, inst.CountryCode)
			}
		}
		r.Institutions = strings.Join(insts, ",")
		r.CountryCodes = strings.Join(codes, ",")
	}

	r.Source = w.PrimaryLocation.Source.DisplayName
	if r.Source == "" {
		r.Source = w.HostVenue.DisplayName
	}

	r.PublicationDate = record.ParseDate(w.PublicationDate)
	if !r.HasDate() && w.PublicationYear > 0 {
		r.PublicationDate = record.ParseDate(fmt.Sprintf("%04d-01-01", w.PublicationYear))
	}

	// The first three concepts map to topic, subfield, field in order.
	if len(w.Concepts) > 0 {
		r.Topic = w.Concepts[0].DisplayName
	}
	if len(w.Concepts) > 1 {
		r.Subfield = w.Concepts[1].DisplayName
	}
	if len(w.Concepts) > 2 {
		r.Field = w.Concepts[2].DisplayName
	}

	var kws []string
	for _, kw := range w.Keywords {
		if kw.DisplayName != "" {
			kws = append(kws, kw.DisplayName)
		}
	}
	r.Keywords = strings.Join(kws, ", ")

	r.DOI = strings.TrimPrefix(w.DOI, "https://doi.org/")
	r.Abstract = ReconstructAbstract(w.AbstractInvertedIndex)

	return r
}

// NormalizeAll maps a batch of works to records, preserving order.
func NormalizeAll(works []Work) []record.Record {
	records := make([]record.Record, len(works))
	for i, w := range works {
		records[i] = Normalize(w)
	}
	return records
}

// ReconstructAbstract rebuilds abstract text from the inverted index
// OpenAlex publishes instead of plain text. Each term maps to the word
// positions it occupies.
func ReconstructAbstract(index map[string][]int) string {
	if len(index) == 0 {
		return ""
	}

	maxPos := -1
	for _, positions := range index {
		for _, p := range positions {
			if p > maxPos {
				maxPos = p
			}
		}
	}
	if maxPos < 0 {
		return ""
	}

	words := make([]string, maxPos+1)
	for term, positions := range index {
		for _, p := range positions {
			if p >= 0 && p < len(words) {
				words[p] = term
			}
		}
	}

	// Drop gaps left by malformed indexes.
	out := words[:0]
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
