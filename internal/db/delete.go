package db

import (
	"context"
	"log/slog"
	"os"

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

// Delete removes the given rows from the catalog and best-effort unlinks
// their artifacts. The row deletion commits first; a failed unlink is
// logged and never rolls the row back, so a missing file for a gone row
// is acceptable while a row without an artifact cannot occur.
func (d *DB) Delete(ctx context.Context, ids []uint) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deleteLocked(ctx, ids)
}

func (d *DB) deleteLocked(ctx context.Context, ids []uint) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var entries []clipboard.Entry
	if err := d.conn.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&entries).Error; err != nil {
		return 0, err
	}

	res := d.conn.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&clipboard.Entry{})
	if res.Error != nil {
		return int(res.RowsAffected), res.Error
	}

	if err := d.rebuildIndex(); err != nil {
		slog.Warn("failed to rebuild full-text index", "error", err)
	}

	removeArtifacts(entries)
	return int(res.RowsAffected), nil
}

// removeArtifacts unlinks artifact files for already-deleted rows. An
// already-absent file is not an error.
func removeArtifacts(entries []clipboard.Entry) {
	for _, e := range entries {
		if e.Path == "" {
			continue
		}
		if err := os.Remove(e.Path); err != nil && !os.IsNotExist(err) {
			slog.Error("failed to remove artifact",
				"id", e.ID, "path", e.Path, "error", err)
		}
	}
}

// Wipe deletes every row and every artifact, keeping the database and
// schema in place.
func (d *DB) Wipe(ctx context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var entries []clipboard.Entry
	if err := d.conn.WithContext(ctx).Find(&entries).Error; err != nil {
		return 0, err
	}

	res := d.conn.WithContext(ctx).
		Where("true").
		Delete(&clipboard.Entry{})
	if res.Error != nil {
		return int(res.RowsAffected), res.Error
	}

	if err := d.rebuildIndex(); err != nil {
		slog.Warn("failed to rebuild full-text index", "error", err)
	}

	removeArtifacts(entries)
	return int(res.RowsAffected), nil
}
