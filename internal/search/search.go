// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search turns a free-text query into a set of canonical records,
// from either the local dataset or the remote CGSpace repository, and
// provides the summary, filter, and aggregate operations the chat panel
// is built on.
package search

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// Backend searches a single record source. The local dataset and the
// remote DSpace API each implement this interface.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string) ([]types.Record, error)
}

// NetworkError wraps a transport failure or a non-2xx response from the
// remote repository.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError wraps a response body that does not carry the expected
// nested search-result shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse error: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// ErrorKind names the failure category for user-facing messages.
// It returns "network", "parse", or "unknown".
func ErrorKind(err error) string {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return "network"
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return "parse"
	}
	return "unknown"
}

// sortByYearDescending orders records newest first. Records without a
// year go after all dated records. The sort is stable so records with
// equal (or absent) years keep their source order.
func sortByYearDescending(records []types.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		yi, yj := records[i].Year, records[j].Year
		if yi == 0 {
			return false
		}
		if yj == 0 {
			return true
		}
		return yi > yj
	})
}
