package classify

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

// fileHandler imports files from a clipboard drop list. The first path
// that saves wins; duplicates and unreadable paths are passed over.
type fileHandler struct {
	env *Env
}

func (h *fileHandler) Name() string { return "file" }

func (h *fileHandler) Classify(ctx context.Context, snap *clipboard.Snapshot) Disposition {
	if len(snap.Files) == 0 {
		return Disposition{Status: NotApplicable}
	}

	last := skipped(clipboard.KindFile, "no importable file")
	for _, src := range snap.Files {
		disp := h.importOne(ctx, src)
		if disp.Status == Saved {
			return disp
		}
		slog.Debug("file not imported",
			"path", src, "status", disp.Status, "reason", disp.Reason)
		last = disp
	}
	return last
}

func (h *fileHandler) importOne(ctx context.Context, src string) Disposition {
	info, err := os.Stat(src)
	if err != nil || info.IsDir() {
		return skipped(clipboard.KindFile, "not a regular file")
	}

	hash, err := hashFile(src)
	if err != nil {
		return failed(clipboard.KindFile, err)
	}

	if dup, err := h.env.isDuplicate(ctx, hash); err != nil {
		return failed(clipboard.KindFile, err)
	} else if dup {
		return skipped(clipboard.KindFile, "duplicate")
	}

	now := h.env.now()
	path, size, err := h.env.Store.ImportFile(src, now)
	if err != nil {
		return failed(clipboard.KindFile, err)
	}

	return h.env.record(ctx, &clipboard.Entry{
		Time:    now,
		Kind:    clipboard.KindFile,
		Preview: filepath.Base(src),
		Path:    path,
		Size:    size,
		Hash:    hash,
	})
}

// hashFile streams the file content through the digest.
func hashFile(path string) (clipboard.Hash, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return clipboard.Hash(h.Sum64()), nil
}
