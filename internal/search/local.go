// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"strings"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// LocalBackend searches an in-memory collection of records with plain
// case-insensitive substring containment. No tokenization, no stemming,
// no scoring: containment in any of title, country, or keywords is a hit.
type LocalBackend struct {
	Records    []types.Record
	MaxResults int
}

// Name returns the backend identifier.
func (b *LocalBackend) Name() string { return "local" }

// Search returns the records matching query, newest first, capped at
// MaxResults. An empty query or an empty collection yields an empty
// result, never an error.
func (b *LocalBackend) Search(_ context.Context, query string) ([]types.Record, error) {
	if query == "" || len(b.Records) == 0 {
		return nil, nil
	}

	q := strings.ToLower(query)

	var matched []types.Record
	for _, r := range b.Records {
		if matchesQuery(r, q) {
			matched = append(matched, r)
		}
	}

	sortByYearDescending(matched)

	// Truncate only after sorting so the most recent matches survive the cap.
	max := b.MaxResults
	if max <= 0 {
		max = 200
	}
	if len(matched) > max {
		matched = matched[:max]
	}
	return matched, nil
}

// matchesQuery reports whether the lowercased query appears in at least
// one of the record's searched text fields. Absent fields are empty
// strings and simply never match.
func matchesQuery(r types.Record, loweredQuery string) bool {
	for _, field := range []string{r.Title, r.Country, r.Keywords} {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}
