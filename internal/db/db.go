// Package db is the durable clipboard history catalog: one sqlite table
// of entries plus an FTS5 index over previews.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

// DB wraps the catalog connection. All operations serialize on an
// internal mutex so a duplicate check can never race a concurrent
// retention pass.
type DB struct {
	mu   sync.Mutex
	conn *gorm.DB
}

// Open creates the data directory if needed, opens history.db and
// migrates the schema. FTS initialization failure is logged but not
// fatal: search degrades to LIKE queries.
func Open(dir string) (*DB, error) {
	if dir == "" {
		return nil, errors.New("database directory can not be empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := gorm.Open(sqlite.Open(filepath.Join(dir, "history.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, err
	}

	if err := conn.AutoMigrate(&clipboard.Entry{}); err != nil {
		return nil, err
	}

	d := &DB{conn: conn}
	if err := d.initFTS(); err != nil {
		slog.Warn("full-text index unavailable, search falls back to LIKE",
			"error", err)
	}
	return d, nil
}

// Insert stores a new entry and fills in its assigned id.
func (d *DB) Insert(ctx context.Context, e *clipboard.Entry) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conn.WithContext(ctx).Create(e).Error
}

// ExistsByHash reports whether any entry carries the given content hash.
func (d *DB) ExistsByHash(ctx context.Context, h clipboard.Hash) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var n int64
	err := d.conn.WithContext(ctx).
		Model(&clipboard.Entry{}).
		Where("hash = ?", h).
		Count(&n).Error
	return n > 0, err
}

// Recent returns up to limit entries, newest first. Ties on time are
// broken by id so same-second saves keep a stable order.
func (d *DB) Recent(ctx context.Context, limit int) ([]clipboard.Entry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var entries []clipboard.Entry
	err := d.conn.WithContext(ctx).
		Order("time DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// Get returns a single entry by id.
func (d *DB) Get(ctx context.Context, id uint) (clipboard.Entry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var e clipboard.Entry
	err := d.conn.WithContext(ctx).First(&e, id).Error
	return e, err
}

// Count returns the number of catalog rows.
func (d *DB) Count(ctx context.Context) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var n int64
	err := d.conn.WithContext(ctx).Model(&clipboard.Entry{}).Count(&n).Error
	return n, err
}

// OlderThan returns every entry with a timestamp before cutoff.
func (d *DB) OlderThan(ctx context.Context, cutoff time.Time) ([]clipboard.Entry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var entries []clipboard.Entry
	err := d.conn.WithContext(ctx).
		Where("time < ?", cutoff).
		Find(&entries).Error
	return entries, err
}

// BeyondNewest returns the entries that fall outside the newest n rows.
// Recency orders by time with id as the stable tiebreak.
func (d *DB) BeyondNewest(ctx context.Context, n int) ([]clipboard.Entry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	newest := d.conn.Model(&clipboard.Entry{}).
		Select("id").
		Order("time DESC, id DESC").
		Limit(n)

	var entries []clipboard.Entry
	err := d.conn.WithContext(ctx).
		Where("id NOT IN (?)", newest).
		Find(&entries).Error
	return entries, err
}
