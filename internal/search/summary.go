// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"strings"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// notAvailable is the placeholder for fragments that cannot be computed
// from the result set.
const notAvailable = "not available"

// titlePreviewLimit is how many titles the summary lists.
const titlePreviewLimit = 3

// Summarize derives the assistant's natural-language reply from a result
// set. The reply always carries the same four fragments: count, year
// range, country list, and a short title preview. An empty set yields a
// fixed no-results message naming the source.
func Summarize(records []types.Record, sourceLabel string) string {
	if len(records) == 0 {
		return fmt.Sprintf(
			"I searched %s and found no documents for that query. "+
				"Try broader terms, or adjust the year and country filters.",
			sourceLabel)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d documents in %s.\n\n", len(records), sourceLabel)
	fmt.Fprintf(&b, "- Year range: %s\n", yearRange(records))
	fmt.Fprintf(&b, "- Countries: %s\n\n", countryList(records))
	fmt.Fprintf(&b, "Sample titles:\n%s\n\n", titlePreview(records))
	b.WriteString("You can refine by year or country in the results panel.")
	return b.String()
}

// yearRange renders "min–max" over the records that carry a year. A set
// with a single distinct year renders that value on both sides ("2022–2022");
// a set with no years renders the not-available placeholder.
func yearRange(records []types.Record) string {
	min, max := 0, 0
	for _, r := range records {
		if !r.HasYear() {
			continue
		}
		if min == 0 || r.Year < min {
			min = r.Year
		}
		if r.Year > max {
			max = r.Year
		}
	}
	if min == 0 {
		return notAvailable
	}
	return fmt.Sprintf("%d–%d", min, max)
}

// countryList joins the distinct countries in first-seen order. Records
// without a country are skipped; an empty list after skipping renders the
// not-available placeholder.
func countryList(records []types.Record) string {
	seen := make(map[string]bool)
	var countries []string
	for _, r := range records {
		if r.Country == "" || seen[r.Country] {
			continue
		}
		seen[r.Country] = true
		countries = append(countries, r.Country)
	}
	if len(countries) == 0 {
		return notAvailable
	}
	return strings.Join(countries, ", ")
}

// titlePreview lists the first few non-empty titles in result order.
func titlePreview(records []types.Record) string {
	var lines []string
	for _, r := range records {
		if r.Title == "" {
			continue
		}
		lines = append(lines, "- "+r.Title)
		if len(lines) == titlePreviewLimit {
			break
		}
	}
	return strings.Join(lines, "\n")
}
