// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// ResultFile is the on-disk representation of a search and its results.
// A search can be saved to a file and reloaded later without re-querying
// the repository.
type ResultFile struct {
	Query   string            `yaml:"query"`
	Backend string            `yaml:"backend"`
	Results []types.Record    `yaml:"results"`
	Summary ResultFileSummary `yaml:"summary"`
}

// ResultFileSummary stores result statistics and a timestamp.
type ResultFileSummary struct {
	Total     int               `yaml:"total"`
	Years     []types.YearCount `yaml:"years,omitempty"`
	Countries []string          `yaml:"countries,omitempty"`
	Timestamp time.Time         `yaml:"timestamp"`
}

// WriteResultFile saves a query and its results to a YAML file.
func WriteResultFile(path, query, backend string, records []types.Record) error {
	rf := ResultFile{
		Query:   query,
		Backend: backend,
		Results: records,
		Summary: ResultFileSummary{
			Total:     len(records),
			Years:     CountByYear(records),
			Countries: DistinctCountries(records),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved search from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
