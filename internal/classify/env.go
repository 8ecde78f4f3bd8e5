package classify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clipkeep/clipkeep/internal/db"
	"github.com/clipkeep/clipkeep/internal/notify"
	"github.com/clipkeep/clipkeep/internal/sensitive"
	"github.com/clipkeep/clipkeep/internal/settings"
	"github.com/clipkeep/clipkeep/internal/store"
	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

// Env carries the collaborators shared by every handler.
type Env struct {
	Settings settings.Settings
	Filter   *sensitive.Filter
	Catalog  *db.DB
	Store    *store.Store
	Notify   notify.Sink

	// Now is a test hook; defaults to time.Now.
	Now func() time.Time
}

func (env *Env) now() time.Time {
	if env.Now != nil {
		return env.Now()
	}
	return time.Now()
}

// NewChain builds the fixed-priority handler chain: rich text, plain
// text (with URL sub-classification), image (delegating file lists),
// file drop list.
func NewChain(env *Env) Chain {
	files := &fileHandler{env: env}
	return Chain{
		&richTextHandler{env: env},
		&textHandler{env: env},
		&imageHandler{env: env, files: files},
		files,
	}
}

// isDuplicate checks the catalog for an existing row with the same
// content hash.
func (env *Env) isDuplicate(ctx context.Context, h clipboard.Hash) (bool, error) {
	return env.Catalog.ExistsByHash(ctx, h)
}

// record inserts the catalog row for a freshly written artifact and
// fires the save notification.
func (env *Env) record(ctx context.Context, e *clipboard.Entry) Disposition {
	if err := env.Catalog.Insert(ctx, e); err != nil {
		return failed(e.Kind, fmt.Errorf("failed to index artifact: %w", err))
	}

	slog.Info("clipboard content saved",
		"kind", e.Kind, "path", e.Path, "size", e.Size)
	if env.Settings.ShowNotifications {
		env.Notify.Notify("Clipboard Manager",
			fmt.Sprintf("%s saved: %s", e.Kind, e.Path))
	}
	return saved(e)
}
