// Package sqlite persists scan history in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ScanStore = (*Store)(nil)

// schema creates the scan history table.
const schema = `
CREATE TABLE IF NOT EXISTS scan_history (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	url          TEXT NOT NULL,
	status       TEXT NOT NULL,
	pages_stored INTEGER NOT NULL DEFAULT 0,
	error        TEXT NOT NULL DEFAULT '',
	scanned_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scan_history_scanned_at ON scan_history(scanned_at DESC);
`

// Store is a SQLite-backed scan history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.ragscanner/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ragscanner", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode for better concurrency between scan workers.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Record appends a scan outcome.
func (s *Store) Record(ctx context.Context, rec driven.ScanRecord) error {
	scannedAt := rec.ScannedAt
	if scannedAt.IsZero() {
		scannedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scan_history (url, status, pages_stored, error, scanned_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.URL, rec.Status, rec.PagesStored, rec.Error, scannedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert scan record: %w", err)
	}
	return nil
}

// History returns the most recent scan records, newest first.
func (s *Store) History(ctx context.Context, limit int) ([]driven.ScanRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, status, pages_stored, error, scanned_at
		 FROM scan_history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query scan history: %w", err)
	}
	defer rows.Close()

	var records []driven.ScanRecord
	for rows.Next() {
		var rec driven.ScanRecord
		var scannedAt string
		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Status, &rec.PagesStored, &rec.Error, &scannedAt); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.ScannedAt, _ = time.Parse(time.RFC3339Nano, scannedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scan history: %w", err)
	}
	return records, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
