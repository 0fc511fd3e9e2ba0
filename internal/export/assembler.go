// Package export orchestrates the pipeline: preprocess the snapshot
// asynchronously, render it synchronously, and hand the cached artifact
// unchanged to the preview surface and to a sink.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scrapdiary/scrapdiary/internal/diary"
	"github.com/scrapdiary/scrapdiary/internal/render"
	"github.com/scrapdiary/scrapdiary/internal/script"
	"github.com/scrapdiary/scrapdiary/internal/summary"
	"github.com/scrapdiary/scrapdiary/internal/theme"
)

// Preprocessor embeds assets into a copy of the snapshot. It must have
// fully settled (success or per-field fallback) before it returns; the
// render phase never runs against a partially inlined model.
type Preprocessor interface {
	Inline(ctx context.Context, m *diary.Model) *diary.Model
}

// Artifact is one complete export: a self-contained document plus the
// metadata the preview surfaces need. The document string is the value
// that gets previewed and persisted; it is never regenerated between the
// two.
type Artifact struct {
	ID        string
	HTML      string
	Summary   summary.Summary
	Days      []string
	CreatedAt time.Time
}

// Assembler runs the pipeline. The zero value is not usable; set Inliner.
type Assembler struct {
	Inliner Preprocessor
	// Now supplies the clock for the current-day calendar flag. Defaults
	// to time.Now. The timestamp never enters the document itself, so a
	// fixed clock makes exports byte-identical.
	Now func() time.Time
}

// Export runs preprocess -> render -> assemble on an immutable snapshot.
// Render-phase steps are pure and synchronous. Any panic inside the
// pipeline is recovered here and returned as an error; no partial
// artifact escapes.
func (a *Assembler) Export(ctx context.Context, m *diary.Model) (artifact *Artifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			artifact = nil
			err = fmt.Errorf("export pipeline: %v", r)
		}
	}()

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	inlined := a.Inliner.Inline(ctx, m)

	tokens := theme.Derive(inlined.Theme)
	sum := summary.Compose(inlined)
	sumJSON, err := sum.JSON()
	if err != nil {
		return nil, err
	}
	days := render.DaysWithItems(inlined)
	nav, err := script.Compose(days, render.DesignWidth, render.DesignHeight)
	if err != nil {
		return nil, err
	}

	doc := render.Render(inlined, tokens, render.Options{
		SummaryJSON: sumJSON,
		Script:      nav,
		Today:       diary.FormatDay(now()),
	})

	return &Artifact{
		ID:        uuid.New().String(),
		HTML:      doc,
		Summary:   sum,
		Days:      days,
		CreatedAt: now(),
	}, nil
}
