// Package engine drives the capture pipeline: it owns the processing
// lock, the background poll worker and the retention policy, and exposes
// the operations a front end needs.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/clipkeep/clipkeep/internal/classify"
	"github.com/clipkeep/clipkeep/internal/db"
	"github.com/clipkeep/clipkeep/internal/notify"
	"github.com/clipkeep/clipkeep/internal/sensitive"
	"github.com/clipkeep/clipkeep/internal/settings"
	"github.com/clipkeep/clipkeep/internal/store"
	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

const (
	defaultInterval = 500 * time.Millisecond
	stopTimeout     = 2 * time.Second
)

// Options configures a new engine.
type Options struct {
	Settings settings.Settings
	Backend  clipboard.Backend
	Catalog  *db.DB
	Store    *store.Store
	Notify   notify.Sink

	// Interval overrides the 500ms poll interval (tests).
	Interval time.Duration
	// Now overrides the clock (tests).
	Now func() time.Time
}

// Engine is the capture-classify-deduplicate-persist-retain core.
type Engine struct {
	// mu is the processing lock: classify, dedupe, store and index
	// insert form one critical section, so a manual trigger and the
	// background worker never interleave mid-operation.
	mu sync.Mutex

	cfg     settings.Settings
	backend clipboard.Backend
	catalog *db.DB
	chain   classify.Chain
	now     func() time.Time

	interval    time.Duration
	joinTimeout time.Duration

	stateMu sync.Mutex
	state   State
	stopc   chan struct{}
	donec   chan struct{}
	lastSeq uint64
}

// New wires the handler chain and returns a stopped engine.
func New(opts Options) *Engine {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Notify == nil {
		opts.Notify = notify.Discard{}
	}

	chain := classify.NewChain(&classify.Env{
		Settings: opts.Settings,
		Filter:   sensitive.New(opts.Settings.SkipSensitive),
		Catalog:  opts.Catalog,
		Store:    opts.Store,
		Notify:   opts.Notify,
		Now:      opts.Now,
	})

	return &Engine{
		cfg:         opts.Settings,
		backend:     opts.Backend,
		catalog:     opts.Catalog,
		chain:       chain,
		now:         opts.Now,
		interval:    opts.Interval,
		joinTimeout: stopTimeout,
	}
}

// Settings returns the configuration the engine was built with.
func (e *Engine) Settings() settings.Settings { return e.cfg }

// ProcessOnce reads the current clipboard, runs the classifier chain and
// reports whether an artifact was saved. Safe to call concurrently with
// the background worker; both serialize on the processing lock.
func (e *Engine) ProcessOnce(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := e.readSnapshot()
	disp := e.chain.Classify(ctx, snap)

	switch disp.Status {
	case classify.Saved:
		return true
	case classify.Skipped:
		slog.Info("clipboard content skipped",
			"kind", disp.Kind, "reason", disp.Reason)
	case classify.Failed:
		slog.Error("failed to capture clipboard content",
			"kind", disp.Kind, "error", disp.Err)
	default:
		slog.Debug("no handler applicable to clipboard content")
	}
	return false
}

// readSnapshot collects every representation the backend currently
// offers.
func (e *Engine) readSnapshot() *clipboard.Snapshot {
	snap := &clipboard.Snapshot{}
	if text, ok := e.backend.ReadText(); ok {
		snap.Text = text
	}
	if html, ok := e.backend.ReadHTML(); ok {
		snap.HTML = html
	}
	if img, ok := e.backend.ReadImage(); ok {
		snap.Image = img
	}
	if files, ok := e.backend.ReadFiles(); ok {
		snap.Files = files
	}
	return snap
}

// History returns up to limit catalog rows, newest first.
func (e *Engine) History(ctx context.Context, limit int) ([]clipboard.Entry, error) {
	return e.catalog.Recent(ctx, limit)
}

// Get returns a single catalog row.
func (e *Engine) Get(ctx context.Context, id uint) (clipboard.Entry, error) {
	return e.catalog.Get(ctx, id)
}

// Search runs a full-text query over previews.
func (e *Engine) Search(ctx context.Context, query string, limit int) ([]clipboard.Entry, error) {
	return e.catalog.Search(ctx, query, limit)
}

// Delete removes catalog rows and their artifacts.
func (e *Engine) Delete(ctx context.Context, ids []uint) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Delete(ctx, ids)
}

// Wipe deletes the whole history.
func (e *Engine) Wipe(ctx context.Context) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Wipe(ctx)
}

// Restore reads a text-like artifact back onto the clipboard.
func (e *Engine) Restore(ctx context.Context, path string) error {
	if !strings.HasSuffix(path, ".txt") && !strings.HasSuffix(path, ".html") {
		return fmt.Errorf("cannot restore %q: only text artifacts are restorable", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return e.backend.WriteText(string(data))
}
