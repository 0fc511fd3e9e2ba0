package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scrapdiary/scrapdiary/internal/diary"
	"github.com/scrapdiary/scrapdiary/internal/export"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadSnapshot(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	mustExec := func(query string, args ...any) {
		t.Helper()
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}

	mustExec(`INSERT INTO diary (id, title) VALUES (1, 'Winter Diary')`)
	mustExec(`INSERT INTO items (id, kind, date_key, title, url, image, position, decoration)
	          VALUES ('a1', 'image', '2026-02-14', 'Snow', '', 'snow.png',
	                  '{"x":40,"y":80,"rotation":-3,"scale":1.1,"z":2}',
	                  '{"preset":"polaroid"}')`)
	mustExec(`INSERT INTO items (id, kind, date_key, title, url) VALUES
	          ('a2', 'link', '2026-02-14', 'Recipe', 'https://example.com/pie')`)
	mustExec(`INSERT INTO widgets (key, goals, cover) VALUES ('2026-02', '- [x] skate', 'rink.jpg')`)
	mustExec(`INSERT INTO links (month, title, url) VALUES ('2026-02', 'Playlist', 'https://example.com/mix')`)
	mustExec(`INSERT INTO theme (id, data) VALUES (1, '{"palette":{"pageBg":"#112233"}}')`)

	m, err := NewStore(db).LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}

	if m.Title != "Winter Diary" {
		t.Errorf("Title = %q, want %q", m.Title, "Winter Diary")
	}
	if len(m.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(m.Items))
	}
	first := m.Items[0]
	if first.Kind != diary.KindImage || first.Image != "snow.png" {
		t.Errorf("first item = %+v", first)
	}
	if first.Position == nil || first.Position.X != 40 || first.Position.Rotation != -3 {
		t.Errorf("Position = %+v, want x=40 rotation=-3", first.Position)
	}
	if first.Decoration == nil || first.Decoration.PresetID != "polaroid" {
		t.Errorf("Decoration = %+v, want preset polaroid", first.Decoration)
	}
	if m.Items[1].Position != nil || m.Items[1].Decoration != nil {
		t.Errorf("unplaced item should have nil position and decoration")
	}
	if len(m.Widgets) != 1 || m.Widgets[0].Cover != "rink.jpg" {
		t.Errorf("Widgets = %+v", m.Widgets)
	}
	if len(m.Links) != 1 || m.Links[0].Month != "2026-02" {
		t.Errorf("Links = %+v", m.Links)
	}
	if m.Theme.Palette["pageBg"] != "#112233" {
		t.Errorf("Theme.Palette = %+v", m.Theme.Palette)
	}
}

func TestLoadSnapshotEmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	m, err := NewStore(db).LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}
	if len(m.Items) != 0 || len(m.Widgets) != 0 || len(m.Links) != 0 {
		t.Errorf("expected empty model, got %+v", m)
	}
}

func TestLoadSnapshotMalformedTheme(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `INSERT INTO theme (id, data) VALUES (1, 'not json')`); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	m, err := NewStore(db).LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}
	if len(m.Theme.Palette) != 0 {
		t.Errorf("malformed theme should fall back to zero theme, got %+v", m.Theme)
	}
}

func TestRecordExportAndHistory(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	store := NewStore(db)

	older := &export.Artifact{
		ID:        "ex-1",
		HTML:      "<html>one</html>",
		Days:      []string{"2026-02-14"},
		CreatedAt: time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC),
	}
	newer := &export.Artifact{
		ID:        "ex-2",
		HTML:      "<html>two two</html>",
		Days:      []string{"2026-02-14", "2026-02-15"},
		CreatedAt: time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
	}
	if err := store.RecordExport(ctx, older, "/tmp/one.html"); err != nil {
		t.Fatalf("RecordExport() error: %v", err)
	}
	if err := store.RecordExport(ctx, newer, "/tmp/two.html"); err != nil {
		t.Fatalf("RecordExport() error: %v", err)
	}

	records, err := store.History(ctx)
	if err != nil {
		t.Fatalf("History() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "ex-2" || records[1].ID != "ex-1" {
		t.Errorf("history not newest first: %q then %q", records[0].ID, records[1].ID)
	}
	if records[0].Bytes != len(newer.HTML) || records[0].Days != 2 {
		t.Errorf("record = %+v", records[0])
	}
	if records[1].Path != "/tmp/one.html" {
		t.Errorf("Path = %q, want /tmp/one.html", records[1].Path)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "diary.json")
	jsonBody := `{
		"title": "From JSON",
		"items": [{"id": "j1", "kind": "note", "date": "2026-03-01", "text": "hello"}]
	}`
	if err := os.WriteFile(jsonPath, []byte(jsonBody), 0o644); err != nil {
		t.Fatal(err)
	}

	yamlPath := filepath.Join(dir, "diary.yaml")
	yamlBody := "title: From YAML\nitems:\n  - id: y1\n    kind: sticker\n    date: 2026-03-02\n    glyph: \"⭐\"\n"
	if err := os.WriteFile(yamlPath, []byte(yamlBody), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadFile(jsonPath)
	if err != nil {
		t.Fatalf("LoadFile(json) error: %v", err)
	}
	if m.Title != "From JSON" || len(m.Items) != 1 || m.Items[0].Kind != diary.KindNote {
		t.Errorf("json model = %+v", m)
	}

	m, err = LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadFile(yaml) error: %v", err)
	}
	if m.Title != "From YAML" || len(m.Items) != 1 || m.Items[0].Glyph != "⭐" {
		t.Errorf("yaml model = %+v", m)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	txt := filepath.Join(dir, "diary.txt")
	if err := os.WriteFile(txt, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(txt); err == nil {
		t.Error("expected error for unsupported extension")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"items": [{"kind": "note", "date": "2026-03-01"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected validation error for item without id")
	}
}
