package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

// pngBytes is a 1x1 transparent PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestInlineRemoteImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	}))
	defer srv.Close()

	m := &diary.Model{Items: []diary.ContentItem{
		{ID: "a", Kind: diary.KindImage, Date: "2026-02-15", Image: srv.URL + "/cat.png"},
	}}

	in := &Inliner{}
	out := in.Inline(context.Background(), m)

	if !strings.HasPrefix(out.Items[0].Image, "data:image/png;base64,") {
		t.Errorf("image = %q, want embedded data URI", out.Items[0].Image[:40])
	}
	if m.Items[0].Image != srv.URL+"/cat.png" {
		t.Error("input model must not be mutated")
	}
}

func TestInlineLocalFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "photo.png"), pngBytes, 0o644); err != nil {
		t.Fatal(err)
	}

	m := &diary.Model{Items: []diary.ContentItem{
		{ID: "a", Kind: diary.KindImage, Date: "2026-02-15", Image: "photo.png"},
	}}

	in := &Inliner{BaseDir: dir}
	out := in.Inline(context.Background(), m)

	if !strings.HasPrefix(out.Items[0].Image, "data:image/png;base64,") {
		t.Errorf("image = %q, want embedded data URI", out.Items[0].Image)
	}
}

func TestInlinePassthrough(t *testing.T) {
	dataURI := "data:image/gif;base64,R0lGOD"
	m := &diary.Model{Items: []diary.ContentItem{
		{ID: "a", Kind: diary.KindImage, Date: "2026-02-15", Image: dataURI},
		{ID: "b", Kind: diary.KindVideo, Date: "2026-02-16", Thumbnail: "https://platform.twitter.com/widgets.js"},
	}}

	in := &Inliner{Allow: []string{"platform.twitter.com/**"}}
	out := in.Inline(context.Background(), m)

	if out.Items[0].Image != dataURI {
		t.Error("data URIs should pass through unchanged")
	}
	if out.Items[1].Thumbnail != "https://platform.twitter.com/widgets.js" {
		t.Error("allowlisted endpoints should pass through unchanged")
	}
}

func TestInlineFailureLeavesOriginal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken.png" {
			http.Error(w, "gone", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	}))
	defer srv.Close()

	m := &diary.Model{
		Items: []diary.ContentItem{
			{ID: "a", Kind: diary.KindImage, Date: "2026-02-15", Image: srv.URL + "/broken.png"},
			{ID: "b", Kind: diary.KindImage, Date: "2026-02-16", Image: srv.URL + "/ok.png"},
		},
		Widgets: []diary.TextWidgetEntry{{Key: "2026-02/profile", Cover: srv.URL + "/ok2.png"}},
	}

	in := &Inliner{}
	out := in.Inline(context.Background(), m)

	if out.Items[0].Image != srv.URL+"/broken.png" {
		t.Errorf("failed field = %q, want original reference kept", out.Items[0].Image)
	}
	if !strings.HasPrefix(out.Items[1].Image, "data:") {
		t.Error("other item should still inline despite the failure")
	}
	if !strings.HasPrefix(out.Widgets[0].Cover, "data:") {
		t.Error("widget cover should still inline despite the failure")
	}
}

func TestInlineProgressSettlesAllFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	}))
	defer srv.Close()

	m := &diary.Model{Items: []diary.ContentItem{
		{ID: "a", Kind: diary.KindImage, Date: "2026-02-15", Image: srv.URL + "/1.png", Thumbnail: srv.URL + "/2.png"},
		{ID: "b", Kind: diary.KindImage, Date: "2026-02-16", Image: srv.URL + "/3.png"},
	}}

	// Callbacks arrive from concurrent fetch workers.
	var mu sync.Mutex
	var calls int
	var last int
	in := &Inliner{Concurrency: 2, OnProgress: func(current, total int, ref string) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
		if current > last {
			last = current
		}
	}}
	in.Inline(context.Background(), m)

	mu.Lock()
	defer mu.Unlock()
	if calls != 3 {
		t.Errorf("progress calls = %d, want 3", calls)
	}
	if last != 3 {
		t.Errorf("final settled count = %d, want 3", last)
	}
}

func TestAllowedPatterns(t *testing.T) {
	in := &Inliner{Allow: []string{"www.youtube.com/**", "platform.twitter.com"}}
	tests := []struct {
		ref  string
		want bool
	}{
		{"https://www.youtube.com/iframe_api", true},
		{"https://platform.twitter.com/widgets.js", true},
		{"https://example.com/image.png", false},
		{"not a url", false},
	}
	for _, tt := range tests {
		if got := in.allowed(tt.ref); got != tt.want {
			t.Errorf("allowed(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestSniffMime(t *testing.T) {
	if got := sniffMime("photo.jpg?v=2", nil); got != "image/jpeg" {
		t.Errorf("sniffMime jpg = %q, want image/jpeg", got)
	}
	if got := sniffMime("noext", pngBytes); got != "image/png" {
		t.Errorf("sniffMime png content = %q, want image/png", got)
	}
}
