// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// FormatTable writes records as a human-readable table to w.
func FormatTable(records []types.Record, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No documents found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-4s  %-16s  %s\n",
		"Rank", "Title", "Year", "Country", "Keywords")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, r := range records {
		title := truncate(r.Title, 60)
		year := ""
		if r.HasYear() {
			year = fmt.Sprintf("%d", r.Year)
		}
		country := truncate(r.Country, 16)
		keywords := truncate(r.Keywords, 24)
		fmt.Fprintf(w, "%-4d  %-60s  %-4s  %-16s  %s\n", i+1, title, year, country, keywords)
	}

	fmt.Fprintf(w, "\n%d documents\n", len(records))
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// FormatYearChart writes a per-year bar chart of counts to w. One '#' per
// document, so small demo result sets stay readable in a terminal.
func FormatYearChart(counts []types.YearCount, w io.Writer) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintln(w, "Documents per year:")
	for _, yc := range counts {
		fmt.Fprintf(w, "  %d  %s (%d)\n", yc.Year, strings.Repeat("#", yc.Count), yc.Count)
	}
}

// FormatMetrics writes the three panel metrics: document count, most
// recent year, and number of distinct countries.
func FormatMetrics(records []types.Record, w io.Writer) {
	latest := notAvailable
	for _, r := range records {
		if r.HasYear() {
			latest = fmt.Sprintf("%d", newestYear(records))
			break
		}
	}
	fmt.Fprintf(w, "Documents: %d   Latest year: %s   Countries: %d\n",
		len(records), latest, len(DistinctCountries(records)))
}

func newestYear(records []types.Record) int {
	max := 0
	for _, r := range records {
		if r.Year > max {
			max = r.Year
		}
	}
	return max
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
