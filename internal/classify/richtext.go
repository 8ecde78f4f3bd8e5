package classify

import (
	"context"
	"log/slog"

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

// richTextHandler saves the HTML representation of the clipboard. It
// runs first: formatted content beats its plain-text fallback.
type richTextHandler struct {
	env *Env
}

func (h *richTextHandler) Name() string { return "rich-text" }

func (h *richTextHandler) Classify(ctx context.Context, snap *clipboard.Snapshot) Disposition {
	if snap.HTML == "" {
		return Disposition{Status: NotApplicable}
	}

	if h.env.Filter.Match(snap.HTML) {
		slog.Debug("skipped sensitive content")
		return skipped(clipboard.KindRichText, "sensitive content")
	}

	hash := clipboard.HashString(snap.HTML)
	if dup, err := h.env.isDuplicate(ctx, hash); err != nil {
		return failed(clipboard.KindRichText, err)
	} else if dup {
		return skipped(clipboard.KindRichText, "duplicate")
	}

	now := h.env.now()
	path, size, err := h.env.Store.SaveText(clipboard.KindRichText, snap.HTML, "", now)
	if err != nil {
		return failed(clipboard.KindRichText, err)
	}

	return h.env.record(ctx, &clipboard.Entry{
		Time:    now,
		Kind:    clipboard.KindRichText,
		Preview: clipboard.Preview(snap.HTML),
		Path:    path,
		Size:    size,
		Hash:    hash,
	})
}
