// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strconv"
	"strings"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// Metadata is a DSpace metadata map: qualified field name to an ordered
// list of values.
type Metadata map[string][]MetadataValue

// MetadataValue is one entry under a metadata field.
type MetadataValue struct {
	Value string `json:"value"`
}

// Fallback chains for each logical field. Order matters: the first
// candidate present in the metadata wins and the rest are never consulted.
// The date chain prefers the specific issued date over the generic one.
var (
	titleFields    = []string{"dc.title", "dcterms.title"}
	dateFields     = []string{"dcterms.issued", "dc.date.issued"}
	countryFields  = []string{"cg.coverage.country", "dc.coverage.spatial"}
	keywordFields  = []string{"cg.subject.agrovoc", "dc.subject"}
	keywordJoinSep = "; "
)

// NormalizeRemote maps one indexable object's metadata into a canonical
// record. displayName is the object's top-level name, used when no title
// field is present; handle builds the landing-page link via siteBase.
// Normalization never fails: missing or malformed source fields become
// zero values.
func NormalizeRemote(md Metadata, displayName, handle, siteBase string) types.Record {
	r := types.Record{
		Title:    firstValue(md, titleFields),
		Year:     yearFromMetadata(md),
		Country:  firstValue(md, countryFields),
		Keywords: joinedValues(md, keywordFields),
	}
	if r.Title == "" {
		r.Title = displayName
	}
	if handle != "" {
		r.Link = siteBase + "/handle/" + handle
	}
	return r
}

// firstValue returns the first value of the first candidate field present
// in the metadata, or "" when none is.
func firstValue(md Metadata, candidates []string) string {
	for _, field := range candidates {
		if vals := md[field]; len(vals) > 0 {
			return vals[0].Value
		}
	}
	return ""
}

// joinedValues returns ALL values under the first candidate field present,
// joined with "; ". Later candidates are ignored even when the winning
// field holds only empty values.
func joinedValues(md Metadata, candidates []string) string {
	for _, field := range candidates {
		vals := md[field]
		if len(vals) == 0 {
			continue
		}
		parts := make([]string, 0, len(vals))
		for _, v := range vals {
			parts = append(parts, v.Value)
		}
		return strings.Join(parts, keywordJoinSep)
	}
	return ""
}

// yearFromMetadata walks the date fallback chain. For each candidate
// present it inspects the first value only: a four-digit numeric prefix
// parses as the year and ends the chain; anything else moves on to the
// next candidate.
func yearFromMetadata(md Metadata) int {
	for _, field := range dateFields {
		vals := md[field]
		if len(vals) == 0 {
			continue
		}
		if y, ok := ParseYearPrefix(vals[0].Value); ok {
			return y
		}
	}
	return 0
}

// ParseYearPrefix extracts a year from the first four characters of s.
// It succeeds only when all four are ASCII digits ("2020-05-01" → 2020).
func ParseYearPrefix(s string) (int, bool) {
	if len(s) < 4 {
		return 0, false
	}
	for _, c := range s[:4] {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil || y == 0 {
		return 0, false
	}
	return y, true
}
