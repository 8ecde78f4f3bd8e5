package clipboard

import (
	"strings"
	"time"
)

// Entry is a single row of the clipboard history catalog. Exactly one
// artifact file exists on disk per entry while the entry exists.
type Entry struct {
	ID      uint      `json:"id"`
	Time    time.Time `json:"time"`
	Kind    Kind      `json:"kind"`
	Preview string    `json:"preview"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	Hash    Hash      `json:"hash" gorm:"index:,unique,length:16"`
}

// Snapshot is the ephemeral clipboard state read on a single poll tick.
// Fields are independent: a snapshot may expose several representations
// of the same selection.
type Snapshot struct {
	Text  string
	HTML  string
	Image []byte
	Files []string
}

// Preview returns a truncated preview string for catalog rows.
func Preview(s string) string {
	if len(s) > 100 {
		return s[:100] + "..."
	}
	return s
}

// FirstLine returns the first line of s, trimmed.
func FirstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
