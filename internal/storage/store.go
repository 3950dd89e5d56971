// Package storage implements the SQLite-backed ledger store.
//
// Amounts are persisted as integer cents, timestamps as UTC text in
// "2006-01-02 15:04:05" form (SQLite's CURRENT_TIMESTAMP). All reads used
// by the aggregation engine live in aggregates.go; per-entity CRUD is
// split across the remaining files.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const timestampLayout = "2006-01-02 15:04:05"

// dateLayout is the day-granularity form used by window filters
// (date(date_added) >= ?).
const dateLayout = "2006-01-02"

type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the single-file database at dbPath
// and brings the schema up to date.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// FormatDate renders t as the day-granularity boundary used by window
// filters.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ParseDate parses a YYYY-MM-DD value from client input.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// parseTimestamp parses a stored CURRENT_TIMESTAMP value. SQLite writes
// them in UTC without a zone suffix.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
// modernc.org/sqlite does not export a typed error for this, so the
// message is matched.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// nullableID converts an optional category reference for binding.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

// scanCents reads a SUM() that may be NULL when no rows match.
func scanCents(row *sql.Row) (int64, error) {
	var total sql.NullInt64
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total.Int64, nil
}
