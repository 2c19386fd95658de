// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local SQLite ledger of completed export runs so
// the user can see when each browser was last exported to and how many
// items went over. The export itself never reads the ledger; a failed
// record is a warning, not an abort.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store manages the export-run database.
type Store struct {
	db *sql.DB
}

// Run is one completed export.
type Run struct {
	ID            int64
	ExportedAt    time.Time
	Browser       string
	BookmarksPath string
	BackupPath    string
	ItemsExported int
	ItemsSkipped  int
}

// Open opens or creates the ledger at path, creating the schema and any
// missing parent directories.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		exported_at TEXT NOT NULL,
		browser TEXT NOT NULL,
		bookmarks_path TEXT NOT NULL,
		backup_path TEXT NOT NULL,
		items_exported INTEGER NOT NULL,
		items_skipped INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record stores a completed run and returns its row id.
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (exported_at, browser, bookmarks_path, backup_path, items_exported, items_skipped)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ExportedAt.UTC().Format(time.RFC3339),
		run.Browser, run.BookmarksPath, run.BackupPath,
		run.ItemsExported, run.ItemsSkipped,
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// List returns past runs, most recent first, up to limit (0 means all).
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, exported_at, browser, bookmarks_path, backup_path, items_exported, items_skipped
		  FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ts string
		if err := rows.Scan(&r.ID, &ts, &r.Browser, &r.BookmarksPath, &r.BackupPath, &r.ItemsExported, &r.ItemsSkipped); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339, ts); perr == nil {
			r.ExportedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
