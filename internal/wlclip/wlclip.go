// Package wlclip implements the clipboard backend contract by shelling
// out to wl-paste and wl-copy.
package wlclip

import (
	"net/url"
	"os/exec"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

// Backend talks to the Wayland clipboard through the wlroots clipboard
// utilities.
type Backend struct{}

var _ clipboard.Backend = (*Backend)(nil)

// New returns a wl-paste/wl-copy backed clipboard.
func New() *Backend {
	return &Backend{}
}

// Sequence derives a change marker by hashing the offered mime list and
// the primary payload. Wayland exposes no native clipboard sequence
// counter; the engine only needs the value to differ across selections.
func (b *Backend) Sequence() (uint64, error) {
	types, err := b.listTypes()
	if err != nil {
		// An empty clipboard makes wl-paste exit non-zero. Treat it
		// as a stable zero sequence rather than an error.
		return 0, nil
	}

	h := xxh3.New()
	for _, t := range types {
		h.WriteString(t)
		h.WriteString("\n")
	}

	switch {
	case hasType(types, "text/plain"), hasType(types, "text/plain;charset=utf-8"):
		if text, ok := b.ReadText(); ok {
			h.WriteString(text)
		}
	case hasType(types, "image/png"):
		if data, ok := b.ReadImage(); ok {
			h.Write(data)
		}
	case hasType(types, "text/uri-list"):
		if files, ok := b.ReadFiles(); ok {
			h.WriteString(strings.Join(files, "\n"))
		}
	}
	return h.Sum64(), nil
}

func (b *Backend) listTypes() ([]string, error) {
	out, err := exec.Command("wl-paste", "--list-types").Output()
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(out)), nil
}

func hasType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

func paste(args ...string) ([]byte, bool) {
	out, err := exec.Command("wl-paste", args...).Output()
	if err != nil {
		return nil, false
	}
	return out, true
}

// ReadText returns the plain-text representation, if offered.
func (b *Backend) ReadText() (string, bool) {
	out, ok := paste("--no-newline", "--type", "text/plain")
	return string(out), ok
}

// ReadHTML returns the text/html representation, if offered.
func (b *Backend) ReadHTML() (string, bool) {
	out, ok := paste("--no-newline", "--type", "text/html")
	return string(out), ok
}

// ReadImage returns the PNG representation, if offered.
func (b *Backend) ReadImage() ([]byte, bool) {
	return paste("--type", "image/png")
}

// ReadFiles parses a text/uri-list offer into local file paths.
func (b *Backend) ReadFiles() ([]string, bool) {
	out, ok := paste("--no-newline", "--type", "text/uri-list")
	if !ok {
		return nil, false
	}

	files := parseURIList(string(out))
	if len(files) == 0 {
		return nil, false
	}
	return files, true
}

// parseURIList extracts local paths from a text/uri-list payload.
// Comment lines and non-file schemes are dropped.
func parseURIList(payload string) []string {
	var files []string
	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if path, ok := strings.CutPrefix(line, "file://"); ok {
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			files = append(files, path)
		}
	}
	return files
}

// WriteText puts text back onto the clipboard.
func (b *Backend) WriteText(text string) error {
	wlCopy := exec.Command("wl-copy")
	wlCopy.Stdin = strings.NewReader(text)
	return wlCopy.Run()
}
