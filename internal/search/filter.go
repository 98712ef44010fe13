// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"sort"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// FilterByYearRange keeps records whose year falls within [minYear, maxYear]
// inclusive. Records without a year never pass this filter. The input is
// not mutated.
func FilterByYearRange(records []types.Record, minYear, maxYear int) []types.Record {
	var out []types.Record
	for _, r := range records {
		if !r.HasYear() {
			continue
		}
		if r.Year >= minYear && r.Year <= maxYear {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCountries keeps records whose country is in the selected set.
// With an active selection, records without a country are excluded. An
// empty selection returns the input unchanged (no filter active).
func FilterByCountries(records []types.Record, selected []string) []types.Record {
	if len(selected) == 0 {
		return records
	}
	want := make(map[string]bool, len(selected))
	for _, c := range selected {
		want[c] = true
	}

	var out []types.Record
	for _, r := range records {
		if r.Country != "" && want[r.Country] {
			out = append(out, r)
		}
	}
	return out
}

// CountByYear groups records by exact year and returns the counts in
// ascending year order. Records without a year are excluded.
func CountByYear(records []types.Record) []types.YearCount {
	counts := make(map[int]int)
	for _, r := range records {
		if r.HasYear() {
			counts[r.Year]++
		}
	}

	out := make([]types.YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, types.YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// DistinctYears returns the sorted distinct years present in the set.
// The panel uses this to decide whether a year-range control makes sense
// (a single distinct year means every record already matches).
func DistinctYears(records []types.Record) []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range records {
		if r.HasYear() && !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}

// DistinctCountries returns the distinct countries present in the set,
// sorted alphabetically, for building a selection list.
func DistinctCountries(records []types.Record) []string {
	seen := make(map[string]bool)
	var countries []string
	for _, r := range records {
		if r.Country != "" && !seen[r.Country] {
			seen[r.Country] = true
			countries = append(countries, r.Country)
		}
	}
	sort.Strings(countries)
	return countries
}
