// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

func TestFormatTable(t *testing.T) {
	records := []types.Record{
		{Title: "Coffee rust in Colombia", Year: 2021, Country: "Colombia", Keywords: "coffee"},
		{Title: "Agroecology basics", Year: 2019, Country: "Peru"},
	}

	var buf bytes.Buffer
	FormatTable(records, &buf)
	s := buf.String()

	if !strings.Contains(s, "Coffee rust in Colombia") {
		t.Error("table should contain the first title")
	}
	if !strings.Contains(s, "2019") {
		t.Error("table should contain the year")
	}
	if !strings.Contains(s, "2 documents") {
		t.Error("table should report the count")
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No documents") {
		t.Error("empty output should say 'No documents'")
	}
}

func TestFormatJSON(t *testing.T) {
	records := []types.Record{
		{Title: "Coffee rust in Colombia", Year: 2021, Country: "Colombia"},
	}

	var buf bytes.Buffer
	if err := FormatJSON(records, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var parsed []types.Record
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(parsed) != 1 || parsed[0].Year != 2021 {
		t.Errorf("parsed = %+v", parsed)
	}
}

func TestFormatYearChart(t *testing.T) {
	counts := []types.YearCount{{Year: 2018, Count: 2}, {Year: 2020, Count: 1}}

	var buf bytes.Buffer
	FormatYearChart(counts, &buf)
	s := buf.String()

	if !strings.Contains(s, "2018  ## (2)") {
		t.Errorf("chart missing 2018 bar: %q", s)
	}
	if !strings.Contains(s, "2020  # (1)") {
		t.Errorf("chart missing 2020 bar: %q", s)
	}
}

func TestFormatMetrics(t *testing.T) {
	records := []types.Record{
		{Title: "A", Year: 2021, Country: "Colombia"},
		{Title: "B", Year: 2019, Country: "Peru"},
	}

	var buf bytes.Buffer
	FormatMetrics(records, &buf)
	s := buf.String()

	if !strings.Contains(s, "Documents: 2") {
		t.Errorf("metrics missing count: %q", s)
	}
	if !strings.Contains(s, "Latest year: 2021") {
		t.Errorf("metrics missing latest year: %q", s)
	}
	if !strings.Contains(s, "Countries: 2") {
		t.Errorf("metrics missing country count: %q", s)
	}
}

func TestFormatMetricsNoYears(t *testing.T) {
	var buf bytes.Buffer
	FormatMetrics([]types.Record{{Title: "A"}}, &buf)
	if !strings.Contains(buf.String(), "Latest year: not available") {
		t.Errorf("metrics should render the placeholder: %q", buf.String())
	}
}

func TestResultFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.yaml")
	records := []types.Record{
		{Title: "Coffee rust in Colombia", Year: 2021, Country: "Colombia", Link: "https://cgspace.cgiar.org/handle/10568/11111"},
		{Title: "Agroecology basics", Year: 2019, Country: "Peru"},
	}

	if err := WriteResultFile(path, "coffee", "local", records); err != nil {
		t.Fatalf("WriteResultFile: %v", err)
	}

	rf, err := ReadResultFile(path)
	if err != nil {
		t.Fatalf("ReadResultFile: %v", err)
	}

	if rf.Query != "coffee" || rf.Backend != "local" {
		t.Errorf("query/backend = %q/%q", rf.Query, rf.Backend)
	}
	if len(rf.Results) != 2 || rf.Results[0].Title != "Coffee rust in Colombia" {
		t.Errorf("results = %+v", rf.Results)
	}
	if rf.Summary.Total != 2 {
		t.Errorf("Summary.Total = %d, want 2", rf.Summary.Total)
	}
	if len(rf.Summary.Years) != 2 || rf.Summary.Years[0].Year != 2019 {
		t.Errorf("Summary.Years = %v", rf.Summary.Years)
	}
}

func TestReadResultFileMissing(t *testing.T) {
	if _, err := ReadResultFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
