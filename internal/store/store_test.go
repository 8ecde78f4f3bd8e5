package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

var testTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestSaveTextLayout(t *testing.T) {
	base := t.TempDir()
	s := New(base, true)

	path, size, err := s.SaveText(clipboard.KindText, "hello world", "hello_world", testTime)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "text", "2024-03-15",
		"text_20240315_103000_hello_world.txt"), path)
	assert.Equal(t, int64(len("hello world")), size)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestSaveTextWithoutDateFolder(t *testing.T) {
	base := t.TempDir()
	s := New(base, false)

	path, _, err := s.SaveText(clipboard.KindURL, "https://example.com", "", testTime)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "urls", "url_20240315_103000.txt"), path)
}

func TestSaveRichTextExtension(t *testing.T) {
	s := New(t.TempDir(), false)

	path, _, err := s.SaveText(clipboard.KindRichText, "<b>hi</b>", "", testTime)
	require.NoError(t, err)
	assert.Equal(t, ".html", filepath.Ext(path))
}

func TestSaveImageAtomic(t *testing.T) {
	base := t.TempDir()
	s := New(base, false)

	png := []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}
	path, size, err := s.SaveImage(png, testTime)
	require.NoError(t, err)
	assert.Equal(t, int64(len(png)), size)
	assert.FileExists(t, path)

	// No temporary file may survive the rename.
	matches, err := filepath.Glob(filepath.Join(base, "images", ".*tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestImportFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(src, []byte("# notes"), 0o644))

	base := t.TempDir()
	s := New(base, false)

	path, size, err := s.ImportFile(src, testTime)
	require.NoError(t, err)
	assert.Equal(t, int64(len("# notes")), size)
	assert.Equal(t, filepath.Join(base, "files", "file_20240315_103000_notes.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# notes", string(data))
}

func TestImportFileMissingSource(t *testing.T) {
	s := New(t.TempDir(), false)
	_, _, err := s.ImportFile(filepath.Join(t.TempDir(), "gone"), testTime)
	assert.Error(t, err)
}
