// Package store reads diary snapshots from the editor's local SQLite
// database or from plain JSON/YAML files, and keeps the export history.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the editor's SQLite database.
type DB struct {
	*sql.DB
	path string
}

// Open creates or opens the diary database at the given path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return d, nil
}

// OpenMemory creates an in-memory database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return d, nil
}

// migrate creates the schema the editor and the exporter share.
func (d *DB) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS diary (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			title TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			date_key TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			thumbnail TEXT NOT NULL DEFAULT '',
			embed_id TEXT NOT NULL DEFAULT '',
			glyph TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL DEFAULT '',
			position TEXT,
			decoration TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_items_date ON items(date_key)`,
		`CREATE TABLE IF NOT EXISTS widgets (
			key TEXT PRIMARY KEY,
			profile TEXT NOT NULL DEFAULT '',
			goals TEXT NOT NULL DEFAULT '',
			bucket TEXT NOT NULL DEFAULT '',
			countdown TEXT NOT NULL DEFAULT '',
			trivia TEXT NOT NULL DEFAULT '',
			music TEXT NOT NULL DEFAULT '',
			background TEXT NOT NULL DEFAULT '',
			cover TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS links (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			month TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS theme (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data TEXT NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS exports (
			id TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			bytes INTEGER NOT NULL,
			days INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := d.Exec(stmt); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}
	}
	return nil
}
