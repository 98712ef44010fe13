// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

func demoRecords() []types.Record {
	return []types.Record{
		{Title: "Coffee rust in Colombia", Year: 2021, Country: "Colombia", Keywords: "coffee; plant disease"},
		{Title: "Agroecology basics", Year: 2019, Country: "Peru", Keywords: "agroecology"},
		{Title: "Climate change adaptation in East Africa", Year: 2022, Country: "Kenya", Keywords: "climate change; adaptation"},
		{Title: "Cassava value chains", Country: "Nigeria", Keywords: "cassava; markets"},
	}
}

func TestLocalSearchEmptyQuery(t *testing.T) {
	b := &LocalBackend{Records: demoRecords(), MaxResults: 50}
	results, err := b.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestLocalSearchEmptyCollection(t *testing.T) {
	b := &LocalBackend{MaxResults: 50}
	results, err := b.Search(context.Background(), "coffee")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestLocalSearchMatchesAcrossFields(t *testing.T) {
	b := &LocalBackend{Records: demoRecords(), MaxResults: 50}

	tests := []struct {
		query string
		want  []string // expected titles, in result order
	}{
		{"coffee", []string{"Coffee rust in Colombia"}},
		{"COLOMBIA", []string{"Coffee rust in Colombia"}}, // case-insensitive, country field
		{"adaptation", []string{"Climate change adaptation in East Africa"}},
		{"markets", []string{"Cassava value chains"}}, // keywords field
		{"xyz-nonexistent", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results, err := b.Search(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(results) != len(tt.want) {
				t.Fatalf("len(results) = %d, want %d", len(results), len(tt.want))
			}
			for i, title := range tt.want {
				if results[i].Title != title {
					t.Errorf("results[%d].Title = %q, want %q", i, results[i].Title, title)
				}
			}
		})
	}
}

func TestLocalSearchOnlyMatchingRecords(t *testing.T) {
	b := &LocalBackend{Records: demoRecords(), MaxResults: 50}
	results, err := b.Search(context.Background(), "a")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, r := range results {
		if !matchesQuery(r, "a") {
			t.Errorf("result %q does not satisfy the match predicate", r.Title)
		}
	}
}

func TestLocalSearchSortsYearDescendingWithAbsentLast(t *testing.T) {
	records := []types.Record{
		{Title: "undated A", Keywords: "maize"},
		{Title: "2019", Year: 2019, Keywords: "maize"},
		{Title: "undated B", Keywords: "maize"},
		{Title: "2021", Year: 2021, Keywords: "maize"},
	}
	b := &LocalBackend{Records: records, MaxResults: 50}

	results, err := b.Search(context.Background(), "maize")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	wantOrder := []string{"2021", "2019", "undated A", "undated B"}
	if len(results) != len(wantOrder) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(wantOrder))
	}
	for i, title := range wantOrder {
		if results[i].Title != title {
			t.Errorf("results[%d].Title = %q, want %q", i, results[i].Title, title)
		}
	}
}

func TestLocalSearchStableAmongEqualYears(t *testing.T) {
	records := []types.Record{
		{Title: "first", Year: 2020, Keywords: "rice"},
		{Title: "second", Year: 2020, Keywords: "rice"},
		{Title: "third", Year: 2020, Keywords: "rice"},
	}
	b := &LocalBackend{Records: records, MaxResults: 50}

	results, err := b.Search(context.Background(), "rice")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if results[i].Title != want {
			t.Errorf("results[%d].Title = %q, want %q", i, results[i].Title, want)
		}
	}
}

func TestLocalSearchCapAppliedAfterSort(t *testing.T) {
	var records []types.Record
	for y := 2000; y < 2030; y++ {
		records = append(records, types.Record{
			Title:    fmt.Sprintf("doc %d", y),
			Year:     y,
			Keywords: "wheat",
		})
	}
	b := &LocalBackend{Records: records, MaxResults: 5}

	results, err := b.Search(context.Background(), "wheat")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("len(results) = %d, want 5", len(results))
	}
	// The cap keeps the newest matches, truncating from the tail.
	for i, want := range []int{2029, 2028, 2027, 2026, 2025} {
		if results[i].Year != want {
			t.Errorf("results[%d].Year = %d, want %d", i, results[i].Year, want)
		}
	}
}
