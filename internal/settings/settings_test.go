package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "settings.json"))
	assert.Equal(t, Default(), st.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "settings.json"))

	cfg := Default()
	cfg.RetentionDays = 7
	cfg.MaxEntries = 25
	cfg.SkipSensitive = false
	require.NoError(t, st.Save(cfg))

	assert.Equal(t, cfg, st.Load())
}

func TestLoadMergesPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"retention_days": 3}`), 0o644))

	got := NewStore(path).Load()
	assert.Equal(t, 3, got.RetentionDays)

	// Everything not overridden keeps its default.
	def := Default()
	assert.Equal(t, def.MinTextLength, got.MinTextLength)
	assert.Equal(t, def.MaxEntries, got.MaxEntries)
	assert.Equal(t, def.SkipSensitive, got.SkipSensitive)
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	assert.Equal(t, Default(), NewStore(path).Load())
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.json")
	require.NoError(t, NewStore(path).Save(Default()))
	assert.FileExists(t, path)
}
