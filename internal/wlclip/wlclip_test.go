package wlclip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseURIList(t *testing.T) {
	payload := "# dropped from file manager\r\n" +
		"file:///home/user/notes.txt\n" +
		"file:///home/user/with%20space.png\n" +
		"https://example.com/not-a-file\n" +
		"\n"

	got := parseURIList(payload)
	assert.Equal(t, []string{
		"/home/user/notes.txt",
		"/home/user/with space.png",
	}, got)
}

func TestParseURIListEmpty(t *testing.T) {
	assert.Empty(t, parseURIList(""))
	assert.Empty(t, parseURIList("# just a comment"))
}
