// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// Store manages the local dataset SQLite index. Importing replaces the
// previous contents wholesale, so the index always mirrors one CSV export.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the dataset database at path, creating the
// schema if it does not exist.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating dataset directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT,
			year INTEGER,
			country TEXT,
			keywords TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_year ON records(year)`,
		`CREATE INDEX IF NOT EXISTS idx_records_country ON records(country)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Import replaces the stored dataset with records and reports progress
// to w. The replace happens in one transaction: a failed import leaves
// the previous dataset intact.
func (s *Store) Import(ctx context.Context, records []types.Record, w io.Writer) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return 0, fmt.Errorf("clearing previous dataset: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (title, year, country, keywords) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, r := range records {
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		default:
		}

		var year interface{}
		if r.HasYear() {
			year = r.Year
		}
		if _, err := stmt.ExecContext(ctx, r.Title, year, r.Country, r.Keywords); err != nil {
			return count, fmt.Errorf("inserting record %q: %w", r.Title, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return count, fmt.Errorf("committing import: %w", err)
	}

	fmt.Fprintf(w, "imported %d records\n", count)
	return count, nil
}

// List returns every stored record in insertion order.
func (s *Store) List(ctx context.Context) ([]types.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, year, country, keywords FROM records ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var r types.Record
		var year sql.NullInt64
		if err := rows.Scan(&r.Title, &year, &r.Country, &r.Keywords); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if year.Valid {
			r.Year = int(year.Int64)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Stats summarizes the stored dataset.
type Stats struct {
	Total     int
	Years     []types.YearCount
	Countries []string
}

// Stats reports the dataset size, per-year counts (ascending, records
// without a year excluded), and the distinct countries.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats

	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM records`).Scan(&st.Total); err != nil {
		return st, fmt.Errorf("counting records: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT year, count(*) FROM records WHERE year IS NOT NULL GROUP BY year ORDER BY year`)
	if err != nil {
		return st, fmt.Errorf("querying year counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var yc types.YearCount
		if err := rows.Scan(&yc.Year, &yc.Count); err != nil {
			return st, fmt.Errorf("scanning year count: %w", err)
		}
		st.Years = append(st.Years, yc)
	}
	if err := rows.Err(); err != nil {
		return st, err
	}

	crows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT country FROM records WHERE country != '' ORDER BY country`)
	if err != nil {
		return st, fmt.Errorf("querying countries: %w", err)
	}
	defer crows.Close()
	for crows.Next() {
		var c string
		if err := crows.Scan(&c); err != nil {
			return st, fmt.Errorf("scanning country: %w", err)
		}
		st.Countries = append(st.Countries, c)
	}
	return st, crows.Err()
}
