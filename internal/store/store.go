package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scrapdiary/scrapdiary/internal/diary"
	"github.com/scrapdiary/scrapdiary/internal/export"
)

// Store reads snapshots and records export history. Editing operations
// belong to the editor, not here.
type Store struct {
	db *DB
}

// NewStore creates a Store over an open database.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// LoadSnapshot assembles one immutable diary model from the editor's
// tables.
func (s *Store) LoadSnapshot(ctx context.Context) (*diary.Model, error) {
	m := &diary.Model{}

	err := s.db.QueryRowContext(ctx, `SELECT title FROM diary WHERE id = 1`).Scan(&m.Title)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("loading diary row: %w", err)
	}

	if err := s.loadItems(ctx, m); err != nil {
		return nil, err
	}
	if err := s.loadWidgets(ctx, m); err != nil {
		return nil, err
	}
	if err := s.loadLinks(ctx, m); err != nil {
		return nil, err
	}
	if err := s.loadTheme(ctx, m); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validating snapshot: %w", err)
	}
	return m, nil
}

func (s *Store) loadItems(ctx context.Context, m *diary.Model) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, date_key, title, description, url, image, thumbnail,
		        embed_id, glyph, body, position, decoration
		 FROM items ORDER BY date_key, id`)
	if err != nil {
		return fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item diary.ContentItem
		var kind string
		var position, decoration sql.NullString
		if err := rows.Scan(&item.ID, &kind, &item.Date, &item.Title, &item.Description,
			&item.URL, &item.Image, &item.Thumbnail, &item.EmbedID, &item.Glyph,
			&item.Text, &position, &decoration); err != nil {
			return fmt.Errorf("scanning item: %w", err)
		}
		item.Kind = diary.Kind(kind)
		if position.Valid && position.String != "" {
			var p diary.Position
			if err := json.Unmarshal([]byte(position.String), &p); err == nil {
				item.Position = &p
			}
		}
		if decoration.Valid && decoration.String != "" {
			var d diary.Decoration
			if err := json.Unmarshal([]byte(decoration.String), &d); err == nil {
				item.Decoration = &d
			}
		}
		m.Items = append(m.Items, item)
	}
	return rows.Err()
}

func (s *Store) loadWidgets(ctx context.Context, m *diary.Model) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, profile, goals, bucket, countdown, trivia, music, background, cover
		 FROM widgets ORDER BY key`)
	if err != nil {
		return fmt.Errorf("querying widgets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w diary.TextWidgetEntry
		if err := rows.Scan(&w.Key, &w.Profile, &w.Goals, &w.Bucket, &w.Countdown,
			&w.Trivia, &w.Music, &w.Background, &w.Cover); err != nil {
			return fmt.Errorf("scanning widget: %w", err)
		}
		m.Widgets = append(m.Widgets, w)
	}
	return rows.Err()
}

func (s *Store) loadLinks(ctx context.Context, m *diary.Model) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT month, title, url FROM links ORDER BY month, id`)
	if err != nil {
		return fmt.Errorf("querying links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l diary.LinkEntry
		if err := rows.Scan(&l.Month, &l.Title, &l.URL); err != nil {
			return fmt.Errorf("scanning link: %w", err)
		}
		m.Links = append(m.Links, l)
	}
	return rows.Err()
}

func (s *Store) loadTheme(ctx context.Context, m *diary.Model) error {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM theme WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("querying theme: %w", err)
	}
	// Malformed theme data degrades to the default theme; token derivation
	// absorbs partial values.
	if err := json.Unmarshal([]byte(data), &m.Theme); err != nil {
		m.Theme = diary.Theme{}
	}
	return nil
}

// ExportRecord is one line of export history.
type ExportRecord struct {
	ID        string
	Path      string
	Bytes     int
	Days      int
	CreatedAt time.Time
}

// RecordExport appends a persisted artifact to the history.
func (s *Store) RecordExport(ctx context.Context, a *export.Artifact, path string) error {
	id := a.ID
	if id == "" {
		id = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exports (id, path, bytes, days, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, path, len(a.HTML), len(a.Days), a.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("recording export: %w", err)
	}
	return nil
}

// History lists past exports, newest first.
func (s *Store) History(ctx context.Context) ([]ExportRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, bytes, days, created_at FROM exports ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying exports: %w", err)
	}
	defer rows.Close()

	var out []ExportRecord
	for rows.Next() {
		var r ExportRecord
		if err := rows.Scan(&r.ID, &r.Path, &r.Bytes, &r.Days, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning export record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
