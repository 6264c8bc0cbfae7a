// Package similarity ranks publication records by content similarity using
// bag-of-terms vectors and cosine distance.
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/impactspark/impactspark/internal/record"
)

// DefaultCount is the default number of similar records returned.
const DefaultCount = 5

// Match is one ranked result: the original record plus its similarity to
// the target.
type Match struct {
	Index      int           `json:"index"`
	Record     record.Record `json:"record"`
	Similarity float64       `json:"similarity"`
}

// termPattern matches word tokens of length 2 or more.
var termPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z]+`)

// FindSimilar ranks all records except the target by descending cosine
// similarity to the target and returns the top n (DefaultCount if n <= 0).
//
// Documents are built by concatenating the text features available across
// the batch, in priority order abstract, title, keywords; features absent
// on an individual record are skipped. Degenerate inputs (fewer than two
// records, an out-of-range target, or no usable text features) yield an
// empty result rather than an error.
func FindSimilar(records []record.Record, targetIndex, n int) []Match {
	if n <= 0 {
		n = DefaultCount
	}
	if len(records) < 2 || targetIndex < 0 || targetIndex >= len(records) {
		return nil
	}

	features := availableFeatures(records)
	if len(features) == 0 {
		return nil
	}

	docs := make([]map[string]int, len(records))
	for i := range records {
		docs[i] = termCounts(buildDocument(&records[i], features))
	}

	target := docs[targetIndex]
	matches := make([]Match, 0, len(records)-1)
	for i := range records {
		if i == targetIndex {
			continue
		}
		matches = append(matches, Match{
			Index:      i,
			Record:     records[i],
			Similarity: cosine(target, docs[i]),
		})
	}

	// Sort by similarity descending; ties keep the lower index first so
	// repeated runs over the same batch rank identically.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// availableFeatures reports which text features exist anywhere in the
// batch, in priority order.
func availableFeatures(records []record.Record) []string {
	var features []string
	for _, f := range []string{"abstract", "title", "keywords"} {
		for i := range records {
			if featureValue(&records[i], f) != "" {
				features = append(features, f)
				break
			}
		}
	}
	return features
}

func featureValue(r *record.Record, feature string) string {
	switch feature {
	case "abstract":
		return strings.TrimSpace(r.Abstract)
	case "title":
		return strings.TrimSpace(r.Title)
	case "keywords":
		return strings.TrimSpace(r.Keywords)
	}
	return ""
}

// buildDocument concatenates a record's present features into one string.
func buildDocument(r *record.Record, features []string) string {
	var parts []string
	for _, f := range features {
		if v := featureValue(r, f); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// termCounts tokenizes a document into a lowercase term-count map with
// stopwords removed.
func termCounts(doc string) map[string]int {
	counts := make(map[string]int)
	for _, term := range termPattern.FindAllString(strings.ToLower(doc), -1) {
		if stopwords[term] {
			continue
		}
		counts[term]++
	}
	return counts
}

// cosine computes the cosine similarity of two sparse term-count vectors.
// Returns 0 when either vector is empty.
func cosine(a, b map[string]int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Iterate the smaller map for the dot product.
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for term, ca := range a {
		if cb, ok := b[term]; ok {
			dot += float64(ca) * float64(cb)
		}
	}
	if dot == 0 {
		return 0
	}

	return dot / (norm(a) * norm(b))
}

func norm(v map[string]int) float64 {
	var sum float64
	for _, c := range v {
		sum += float64(c) * float64(c)
	}
	return math.Sqrt(sum)
}
