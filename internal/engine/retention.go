package engine

import (
	"context"
	"log/slog"

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

// Cleanup runs one retention pass: first every entry older than
// retention_days goes, then the catalog is trimmed to the newest
// max_entries rows regardless of age. Row deletions commit before the
// artifact unlinks; unlink failures are logged, never rolled back.
// Returns the number of rows removed.
func (e *Engine) Cleanup(ctx context.Context) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0

	cutoff := e.now().AddDate(0, 0, -e.cfg.RetentionDays)
	aged, err := e.catalog.OlderThan(ctx, cutoff)
	if err != nil {
		return total, err
	}
	n, err := e.catalog.Delete(ctx, entryIDs(aged))
	total += n
	if err != nil {
		return total, err
	}

	over, err := e.catalog.BeyondNewest(ctx, e.cfg.MaxEntries)
	if err != nil {
		return total, err
	}
	n, err = e.catalog.Delete(ctx, entryIDs(over))
	total += n
	if err != nil {
		return total, err
	}

	if total > 0 {
		slog.Info("retention pass complete", "deleted-items", total)
	}
	return total, nil
}

func entryIDs(entries []clipboard.Entry) []uint {
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}
