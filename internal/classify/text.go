package classify

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/clipkeep/clipkeep/internal/store"
	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

// textHandler saves plain text, sub-classifying absolute URLs.
type textHandler struct {
	env *Env
}

func (h *textHandler) Name() string { return "text" }

func (h *textHandler) Classify(ctx context.Context, snap *clipboard.Snapshot) Disposition {
	if snap.Text == "" {
		return Disposition{Status: NotApplicable}
	}

	text := snap.Text
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < h.env.Settings.MinTextLength {
		return skipped(clipboard.KindText, "below minimum length")
	}

	if h.env.Filter.Match(text) {
		slog.Debug("skipped sensitive content")
		return skipped(clipboard.KindText, "sensitive content")
	}

	hash := clipboard.HashString(text)
	if dup, err := h.env.isDuplicate(ctx, hash); err != nil {
		return failed(clipboard.KindText, err)
	} else if dup {
		return skipped(clipboard.KindText, "duplicate")
	}

	kind := clipboard.KindText
	slug := store.Slug(clipboard.FirstLine(text))
	if isURL(trimmed) {
		kind = clipboard.KindURL
		slug = ""
	}

	now := h.env.now()
	path, size, err := h.env.Store.SaveText(kind, text, slug, now)
	if err != nil {
		return failed(kind, err)
	}

	return h.env.record(ctx, &clipboard.Entry{
		Time:    now,
		Kind:    kind,
		Preview: clipboard.Preview(text),
		Path:    path,
		Size:    size,
		Hash:    hash,
	})
}

// isURL reports whether text parses as an absolute URL with both a
// scheme and a host.
func isURL(text string) bool {
	u, err := url.Parse(text)
	return err == nil && u.Scheme != "" && u.Host != ""
}
