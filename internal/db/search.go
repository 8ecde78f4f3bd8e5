package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

// initFTS sets up the FTS5 virtual table over entry previews and the
// triggers that keep it in sync.
func (d *DB) initFTS() error {
	if err := d.conn.Exec(`
    CREATE VIRTUAL TABLE IF NOT EXISTS entry_index USING FTS5(
			preview,
			path,
			content='entries',
			content_rowid='id'
    );
    `).Error; err != nil {
		return fmt.Errorf("failed to create FTS5 table: %w", err)
	}

	triggers := []string{
		`CREATE TRIGGER IF NOT EXISTS entry_ai AFTER INSERT ON entries BEGIN
            INSERT INTO entry_index(rowid, preview, path)
            VALUES (new.id, new.preview, new.path);
        END;`,
		`CREATE TRIGGER IF NOT EXISTS entry_au AFTER UPDATE ON entries BEGIN
            UPDATE entry_index SET preview=new.preview, path=new.path
            WHERE rowid=new.id;
        END;`,
		`CREATE TRIGGER IF NOT EXISTS entry_ad AFTER DELETE ON entries BEGIN
            DELETE FROM entry_index WHERE rowid=old.id;
        END;`,
	}

	for _, t := range triggers {
		if err := d.conn.Exec(t).Error; err != nil {
			return fmt.Errorf("failed to create trigger: %w", err)
		}
	}
	return nil
}

// rebuildIndex rebuilds the FTS index for all existing rows. Content
// tables do not see external deletes, so bulk removals trigger this.
func (d *DB) rebuildIndex() error {
	return d.conn.Exec("INSERT INTO entry_index(entry_index) VALUES('rebuild')").Error
}

// Search runs a full-text search over previews, falling back to a LIKE
// scan when FTS is unavailable or empty-handed.
func (d *DB) Search(ctx context.Context, query string, limit int) ([]clipboard.Entry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var entries []clipboard.Entry
	err := d.conn.WithContext(ctx).Raw(`SELECT entries.* FROM entries
    JOIN entry_index ON entry_index.rowid = entries.id
    WHERE entry_index MATCH ?
    ORDER BY rank
    LIMIT ?
    `, query+"*", limit).
		Scan(&entries).Error

	if err == nil && len(entries) > 0 {
		return entries, nil
	}

	if err != nil {
		slog.Debug("FTS5 search failed, falling back to LIKE",
			"query", query, "error", err)
	}

	likeQuery := "%" + query + "%"
	if err := d.conn.WithContext(ctx).
		Where("preview LIKE ? OR path LIKE ?", likeQuery, likeQuery).
		Order("time DESC, id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
