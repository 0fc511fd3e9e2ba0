// Package assets resolves every image-bearing reference in a diary snapshot
// to a form that survives offline use.
package assets

import (
	"context"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

// ProgressFunc receives (settled, total, ref) as fields finish inlining.
type ProgressFunc func(current, total int, ref string)

// Inliner embeds external and local image references into a diary snapshot.
type Inliner struct {
	// Client performs remote fetches. Defaults to a client with Timeout.
	Client *http.Client
	// Allow lists doublestar patterns for remote endpoints that stay
	// external (third-party embed loaders and player surfaces).
	Allow []string
	// BaseDir resolves bare file paths in the snapshot.
	BaseDir string
	// Timeout bounds each individual fetch.
	Timeout time.Duration
	// Concurrency limits parallel fetches. Values below 1 mean 4.
	Concurrency int
	// OnProgress, if set, is called as each field settles.
	OnProgress ProgressFunc
}

// DefaultTimeout bounds a single asset fetch when none is configured.
const DefaultTimeout = 15 * time.Second

// field is one inlinable reference slot in the copied model.
type field struct {
	ref  *string
	name string
}

// Inline returns a copy of the snapshot with every image-bearing field
// embedded. Inlining is best-effort per field: a failed read is logged and
// leaves that field at its original value. The input model is never
// mutated, and Inline does not return until every field has settled.
func (in *Inliner) Inline(ctx context.Context, m *diary.Model) *diary.Model {
	out := m.Clone()
	fields := collectFields(out)
	total := len(fields)
	if total == 0 {
		return out
	}

	concurrency := in.Concurrency
	if concurrency < 1 {
		concurrency = 4
	}
	client := in.client()

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	var settled int64

	for _, f := range fields {
		sem <- struct{}{}
		wg.Add(1)
		go func(f field) {
			defer wg.Done()
			defer func() { <-sem }()

			orig := *f.ref
			embedded, err := in.resolve(ctx, client, orig)
			if err != nil {
				log.Printf("assets: inline %s (%s): %v; keeping original reference", f.name, truncateRef(orig), err)
			} else {
				// Each goroutine writes only its own field in the copy,
				// so no locking is needed.
				*f.ref = embedded
			}
			count := atomic.AddInt64(&settled, 1)
			if in.OnProgress != nil {
				in.OnProgress(int(count), total, f.name)
			}
		}(f)
	}
	wg.Wait()
	return out
}

// collectFields enumerates the fixed set of image-bearing fields across
// items, widgets, and the theme. No reflection: adding an inlinable field
// means adding it here.
func collectFields(m *diary.Model) []field {
	var fields []field
	add := func(ref *string, name string) {
		if *ref != "" {
			fields = append(fields, field{ref: ref, name: name})
		}
	}
	for i := range m.Items {
		item := &m.Items[i]
		add(&item.Image, "item "+item.ID+" image")
		add(&item.Thumbnail, "item "+item.ID+" thumbnail")
	}
	for i := range m.Widgets {
		w := &m.Widgets[i]
		add(&w.Background, "widget "+w.Key+" background")
		add(&w.Cover, "widget "+w.Key+" cover")
	}
	add(&m.Theme.BackgroundImage, "theme background")
	return fields
}

func (in *Inliner) client() *http.Client {
	if in.Client != nil {
		return in.Client
	}
	timeout := in.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func truncateRef(ref string) string {
	if len(ref) > 80 {
		return ref[:80] + "..."
	}
	return ref
}
