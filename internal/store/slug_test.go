package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World! @2024", "Hello__World___2024"},
		{"already-safe_name", "already-safe_name"},
		{"tabs\tand spaces", "tabs_and_spaces"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.in), "input %q", tt.in)
	}
}

func TestSlugTruncates(t *testing.T) {
	long := strings.Repeat("a", 80)
	got := Slug(long)
	assert.Len(t, got, 50)
}

func TestSlugReplacesMultibyte(t *testing.T) {
	got := Slug("héllo wörld")
	assert.Equal(t, "h_llo_w_rld", got)
}
