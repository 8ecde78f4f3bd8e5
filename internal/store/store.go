// Package store writes clipboard artifacts into the typed/dated file
// hierarchy under the data directory.
package store

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

const timestampLayout = "20060102_150405"

// Store resolves artifact destinations below Base, optionally split into
// per-day subdirectories.
type Store struct {
	Base   string
	ByDate bool
}

// New returns a store rooted at base.
func New(base string, byDate bool) *Store {
	return &Store{Base: base, ByDate: byDate}
}

// Dir returns (and creates) the destination directory for kind at now.
func (s *Store) Dir(kind clipboard.Kind, now time.Time) (string, error) {
	dir := filepath.Join(s.Base, kind.Folder())
	if s.ByDate {
		dir = filepath.Join(dir, now.Format("2006-01-02"))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return dir, nil
}

// Filename builds <prefix>_<timestamp>[_<slug>]<ext>.
func Filename(kind clipboard.Kind, now time.Time, slug, ext string) string {
	name := kind.Prefix() + "_" + now.Format(timestampLayout)
	if slug != "" {
		name += "_" + slug
	}
	if ext == "" {
		ext = kind.Ext()
	}
	return name + ext
}

// SaveText writes a text-like artifact (text, url, rich text) directly.
// The single-writer pipeline means there is no partial-write risk here.
func (s *Store) SaveText(kind clipboard.Kind, text string, slug string, now time.Time) (string, int64, error) {
	dir, err := s.Dir(kind, now)
	if err != nil {
		return "", 0, err
	}

	path := filepath.Join(dir, Filename(kind, now, slug, ""))
	data := []byte(text)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", 0, fmt.Errorf("failed to write artifact: %w", err)
	}
	return path, int64(len(data)), nil
}

// SaveImage writes png bytes through a temporary file followed by an
// atomic rename, so an interrupted capture never leaves a partial
// artifact inside the catalog tree.
func (s *Store) SaveImage(png []byte, now time.Time) (string, int64, error) {
	dir, err := s.Dir(clipboard.KindImage, now)
	if err != nil {
		return "", 0, err
	}

	sum := xxh3.Hash128(png).Bytes()
	tmp := filepath.Join(dir, "."+hex.EncodeToString(sum[:])+".tmp")
	if err := os.WriteFile(tmp, png, 0o644); err != nil {
		return "", 0, fmt.Errorf("failed to write temporary image: %w", err)
	}

	path := filepath.Join(dir, Filename(clipboard.KindImage, now, "", ""))
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", 0, fmt.Errorf("failed to move image into place: %w", err)
	}
	return path, int64(len(png)), nil
}

// ImportFile copies a dropped file into the store, keeping its original
// name as the slug and its original extension.
func (s *Store) ImportFile(src string, now time.Time) (string, int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", 0, err
	}
	defer in.Close()

	dir, err := s.Dir(clipboard.KindFile, now)
	if err != nil {
		return "", 0, err
	}

	base := filepath.Base(src)
	path := filepath.Join(dir, Filename(clipboard.KindFile, now, base, ""))

	out, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("failed to copy file artifact: %w", err)
	}
	return path, n, nil
}
