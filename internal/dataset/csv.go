// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads the local CGSpace metadata subset, from the demo
// CSV or from a SQLite index built by `dataset import`.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// Column headers of the demo CSV. The dataset ships with Spanish headers;
// missing columns are tolerated and simply leave the field absent.
const (
	colTitle    = "Título"
	colYear     = "Año"
	colCountry  = "País"
	colKeywords = "PalabrasClave"
)

// LoadCSV reads the demo dataset and normalizes each row into a canonical
// record. Non-numeric year cells coerce to absent rather than failing the
// load; a row never aborts the whole file.
func LoadCSV(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses CSV data from r. The first row is the header; recognized
// columns map to record fields by name.
func ReadCSV(r io.Reader) ([]types.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var records []types.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset row: %w", err)
		}
		records = append(records, normalizeRow(row, cols))
	}
	return records, nil
}

// normalizeRow maps one flat CSV row into a canonical record. Recognized
// fields copy directly; the year coerces to an integer or stays absent.
func normalizeRow(row []string, cols map[string]int) types.Record {
	return types.Record{
		Title:    cell(row, cols, colTitle),
		Year:     coerceYear(cell(row, cols, colYear)),
		Country:  cell(row, cols, colCountry),
		Keywords: cell(row, cols, colKeywords),
	}
}

func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// coerceYear parses a year cell. Anything that is not a plain integer
// (or an integer-valued decimal like "2020.0", which spreadsheet exports
// produce) becomes absent.
func coerceYear(s string) int {
	if s == "" {
		return 0
	}
	s = strings.TrimSuffix(s, ".0")
	y, err := strconv.Atoi(s)
	if err != nil || y <= 0 {
		return 0
	}
	return y
}
