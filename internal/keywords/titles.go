package keywords

import (
	"regexp"
	"strings"

	"github.com/impactspark/impactspark/internal/record"
)

// titleTermPattern matches alphabetic tokens of length 3 or more.
var titleTermPattern = regexp.MustCompile(`[a-zA-Z]{3,}`)

// titleStopwords are dropped during title-term extraction.
var titleStopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"that": true, "this": true, "are": true, "not": true, "have": true,
	"was": true, "its": true, "their": true, "using": true, "based": true,
}

// fallbackFromTitles extracts frequent lowercase terms from titles when no
// record carries explicit keywords. Impact and trend tables stay empty in
// this mode.
func fallbackFromTitles(records []record.Record) Result {
	freq := make(map[string]int)
	for i := range records {
		title := strings.TrimSpace(records[i].Title)
		if title == "" {
			continue
		}
		for _, term := range titleTermPattern.FindAllString(strings.ToLower(title), -1) {
			if titleStopwords[term] {
				continue
			}
			freq[term]++
		}
	}

	idx := make(map[string][]int, len(freq))
	for term, n := range freq {
		// frequencyTable only needs lengths; synthesize index slices.
		idx[term] = make([]int, n)
	}

	return Result{
		Frequency:  frequencyTable(idx),
		FromTitles: true,
	}
}
