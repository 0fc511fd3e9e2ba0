package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/scrapdiary/scrapdiary/internal/assets"
	"github.com/scrapdiary/scrapdiary/internal/config"
	"github.com/scrapdiary/scrapdiary/internal/diary"
	"github.com/scrapdiary/scrapdiary/internal/export"
	"github.com/scrapdiary/scrapdiary/internal/progress"
	"github.com/scrapdiary/scrapdiary/internal/store"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `scrapdiary init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadSnapshot reads the diary from the configured source. The returned
// Store is non-nil only for the database source, for export history;
// callers own closing the returned DB.
func loadSnapshot(ctx context.Context, cfg *config.Config) (*diary.Model, *store.Store, *store.DB, error) {
	switch cfg.Source {
	case config.SourceFile:
		m, err := store.LoadFile(cfg.SnapshotPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return m, nil, nil, nil
	default:
		db, err := store.Open(cfg.DatabasePath)
		if err != nil {
			return nil, nil, nil, err
		}
		st := store.NewStore(db)
		m, err := st.LoadSnapshot(ctx)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return m, st, db, nil
	}
}

// newAssembler builds the export pipeline from config, with inlining
// progress routed to the given reporter.
func newAssembler(cfg *config.Config, reporter progress.Reporter) *export.Assembler {
	// Progress callbacks arrive from concurrent fetch workers.
	var mu sync.Mutex
	started := false
	inliner := &assets.Inliner{
		Allow:       cfg.Allowlist,
		BaseDir:     cfg.AssetDir,
		Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		Concurrency: cfg.MaxConcurrency,
		OnProgress: func(current, total int, ref string) {
			mu.Lock()
			defer mu.Unlock()
			if !started {
				reporter.Start(total)
				started = true
			}
			reporter.Update(current, ref)
			if current == total {
				reporter.Finish()
			}
		},
	}
	return &export.Assembler{Inliner: inliner}
}
