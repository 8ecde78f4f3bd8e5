package classify

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png" // registers the decoder used for the preview

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

// imageHandler saves bitmap clipboard content. When the clipboard
// exposes a file path list instead of pixels it delegates to the file
// handler.
type imageHandler struct {
	env   *Env
	files *fileHandler
}

func (h *imageHandler) Name() string { return "image" }

func (h *imageHandler) Classify(ctx context.Context, snap *clipboard.Snapshot) Disposition {
	if len(snap.Image) == 0 {
		if len(snap.Files) > 0 {
			return h.files.Classify(ctx, snap)
		}
		return Disposition{Status: NotApplicable}
	}

	maxBytes := int64(h.env.Settings.MaxImageSizeMB) * 1024 * 1024
	if int64(len(snap.Image)) > maxBytes {
		return skipped(clipboard.KindImage, "exceeds size limit")
	}

	hash := clipboard.HashBytes(snap.Image)
	if dup, err := h.env.isDuplicate(ctx, hash); err != nil {
		return failed(clipboard.KindImage, err)
	} else if dup {
		return skipped(clipboard.KindImage, "duplicate")
	}

	now := h.env.now()
	path, size, err := h.env.Store.SaveImage(snap.Image, now)
	if err != nil {
		return failed(clipboard.KindImage, err)
	}

	return h.env.record(ctx, &clipboard.Entry{
		Time:    now,
		Kind:    clipboard.KindImage,
		Preview: imagePreview(snap.Image),
		Path:    path,
		Size:    size,
		Hash:    hash,
	})
}

// imagePreview describes the bitmap for the catalog row, with the pixel
// dimensions when the data decodes.
func imagePreview(data []byte) string {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Sprintf("Image (%d bytes)", len(data))
	}
	return fmt.Sprintf("Image %dx%d", cfg.Width, cfg.Height)
}
