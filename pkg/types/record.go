// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the cgspace-agent pipeline.
package types

// Record is the canonical representation of one bibliographic item,
// independent of whether it came from the local dataset or the remote
// repository. Absent fields are zero values: "" for strings, 0 for Year.
// Records are never mutated after construction; filters and searches
// always build new slices.
type Record struct {
	// Title is the document title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Year is the four-digit publication year, or 0 when the source value
	// was missing or could not be parsed.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Country is the country the document covers.
	Country string `json:"country,omitempty" yaml:"country,omitempty"`

	// Keywords is a "; "-joined subject list.
	Keywords string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Link is the repository landing page URL. Only remote results carry
	// one; the local dataset has no equivalent column.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}

// HasYear reports whether the record carries a publication year.
func (r Record) HasYear() bool { return r.Year != 0 }

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a session transcript.
type Message struct {
	Role    Role   `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// YearCount is one bucket of a per-year aggregate.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}
