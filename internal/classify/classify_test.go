package classify

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipkeep/clipkeep/internal/db"
	"github.com/clipkeep/clipkeep/internal/notify"
	"github.com/clipkeep/clipkeep/internal/sensitive"
	"github.com/clipkeep/clipkeep/internal/settings"
	"github.com/clipkeep/clipkeep/internal/store"
	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

func testEnv(t *testing.T, mutate func(*settings.Settings)) (*Env, *db.DB) {
	t.Helper()

	cfg := settings.Default()
	if mutate != nil {
		mutate(&cfg)
	}

	catalog, err := db.Open(t.TempDir())
	require.NoError(t, err)

	return &Env{
		Settings: cfg,
		Filter:   sensitive.New(cfg.SkipSensitive),
		Catalog:  catalog,
		Store:    store.New(t.TempDir(), cfg.OrganizeByDate),
		Notify:   notify.Discard{},
		Now:      func() time.Time { return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC) },
	}, catalog
}

func TestTextBelowMinimumLength(t *testing.T) {
	env, catalog := testEnv(t, nil)
	chain := NewChain(env)

	disp := chain.Classify(context.Background(), &clipboard.Snapshot{Text: "  hi  "})
	assert.Equal(t, Skipped, disp.Status)

	n, err := catalog.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTextSaved(t *testing.T) {
	env, catalog := testEnv(t, nil)
	chain := NewChain(env)

	disp := chain.Classify(context.Background(), &clipboard.Snapshot{Text: "hello world"})
	require.Equal(t, Saved, disp.Status)
	assert.Equal(t, clipboard.KindText, disp.Kind)
	require.NotNil(t, disp.Entry)
	assert.FileExists(t, disp.Entry.Path)

	entries, err := catalog.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello world", entries[0].Preview)
}

func TestURLSubClassification(t *testing.T) {
	env, _ := testEnv(t, nil)
	chain := NewChain(env)
	ctx := context.Background()

	disp := chain.Classify(ctx, &clipboard.Snapshot{Text: "https://example.com/path"})
	require.Equal(t, Saved, disp.Status)
	assert.Equal(t, clipboard.KindURL, disp.Kind)
	assert.Contains(t, disp.Entry.Path, string(filepath.Separator)+"urls"+string(filepath.Separator))

	disp = chain.Classify(ctx, &clipboard.Snapshot{Text: "not a url"})
	require.Equal(t, Saved, disp.Status)
	assert.Equal(t, clipboard.KindText, disp.Kind)
}

func TestSensitiveVeto(t *testing.T) {
	ctx := context.Background()

	for _, text := range []string{
		"password: hunter2",
		"4111-1111-1111-1111",
		"123-45-6789",
	} {
		env, catalog := testEnv(t, nil)
		disp := NewChain(env).Classify(ctx, &clipboard.Snapshot{Text: text})
		assert.Equal(t, Skipped, disp.Status, "text %q", text)

		n, err := catalog.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n, "text %q must not be stored", text)
	}
}

func TestSensitiveFilterDisabled(t *testing.T) {
	env, _ := testEnv(t, func(cfg *settings.Settings) {
		cfg.SkipSensitive = false
	})
	disp := NewChain(env).Classify(context.Background(),
		&clipboard.Snapshot{Text: "password: hunter2"})
	assert.Equal(t, Saved, disp.Status)
}

func TestDuplicateVeto(t *testing.T) {
	env, catalog := testEnv(t, nil)
	chain := NewChain(env)
	ctx := context.Background()

	first := chain.Classify(ctx, &clipboard.Snapshot{Text: "hello world"})
	require.Equal(t, Saved, first.Status)

	second := chain.Classify(ctx, &clipboard.Snapshot{Text: "hello world"})
	assert.Equal(t, Skipped, second.Status)
	assert.Equal(t, "duplicate", second.Reason)

	n, err := catalog.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestRichTextWinsOverPlainText(t *testing.T) {
	env, _ := testEnv(t, nil)
	chain := NewChain(env)

	disp := chain.Classify(context.Background(), &clipboard.Snapshot{
		Text: "bold move",
		HTML: "<b>bold move</b>",
	})
	require.Equal(t, Saved, disp.Status)
	assert.Equal(t, clipboard.KindRichText, disp.Kind)
	assert.Equal(t, ".html", filepath.Ext(disp.Entry.Path))
}

func TestImageSizeLimit(t *testing.T) {
	env, catalog := testEnv(t, func(cfg *settings.Settings) {
		cfg.MaxImageSizeMB = 1
	})
	chain := NewChain(env)

	big := make([]byte, 2*1024*1024)
	disp := chain.Classify(context.Background(), &clipboard.Snapshot{Image: big})
	assert.Equal(t, Skipped, disp.Status)

	n, err := catalog.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImageSaved(t *testing.T) {
	env, _ := testEnv(t, nil)
	chain := NewChain(env)

	disp := chain.Classify(context.Background(),
		&clipboard.Snapshot{Image: []byte{0x89, 'P', 'N', 'G', 1, 2, 3}})
	require.Equal(t, Saved, disp.Status)
	assert.Equal(t, clipboard.KindImage, disp.Kind)
	assert.FileExists(t, disp.Entry.Path)
	assert.Contains(t, disp.Entry.Preview, "Image")
}

func TestImageDelegatesFileList(t *testing.T) {
	src := filepath.Join(t.TempDir(), "dropped.txt")
	require.NoError(t, os.WriteFile(src, []byte("dropped content"), 0o644))

	env, _ := testEnv(t, nil)
	chain := NewChain(env)

	disp := chain.Classify(context.Background(), &clipboard.Snapshot{Files: []string{src}})
	require.Equal(t, Saved, disp.Status)
	assert.Equal(t, clipboard.KindFile, disp.Kind)
	assert.Equal(t, "dropped.txt", disp.Entry.Preview)
}

func TestFileListSkipsMissingPaths(t *testing.T) {
	src := filepath.Join(t.TempDir(), "real.txt")
	require.NoError(t, os.WriteFile(src, []byte("real"), 0o644))

	env, _ := testEnv(t, nil)
	chain := NewChain(env)

	disp := chain.Classify(context.Background(), &clipboard.Snapshot{
		Files: []string{filepath.Join(t.TempDir(), "ghost.txt"), src},
	})
	require.Equal(t, Saved, disp.Status)
	assert.Equal(t, "real.txt", disp.Entry.Preview)
}

func TestEmptySnapshotIsAMiss(t *testing.T) {
	env, _ := testEnv(t, nil)
	chain := NewChain(env)

	disp := chain.Classify(context.Background(), &clipboard.Snapshot{})
	assert.Equal(t, NotApplicable, disp.Status)
}

func TestLongPreviewTruncated(t *testing.T) {
	env, _ := testEnv(t, nil)
	chain := NewChain(env)

	long := strings.Repeat("x", 150)
	disp := chain.Classify(context.Background(), &clipboard.Snapshot{Text: long})
	require.Equal(t, Saved, disp.Status)
	assert.Equal(t, strings.Repeat("x", 100)+"...", disp.Entry.Preview)
}
