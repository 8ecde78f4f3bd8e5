package sensitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterMatch(t *testing.T) {
	f := New(true)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"password keyword", "password: hunter2", true},
		{"keyword uppercase", "MY SECRET PLANS", true},
		{"api key keyword", "api_key=abc123", true},
		{"otp keyword", "your otp is 993312", true},
		{"credit card dashed", "4111-1111-1111-1111", true},
		{"credit card spaced", "4111 1111 1111 1111", true},
		{"credit card compact", "4111111111111111", true},
		{"ssn", "123-45-6789", true},
		{"plain sentence", "the quick brown fox", false},
		{"short number", "1234-5678", false},
		{"url", "https://example.com/path", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Match(tt.text))
		})
	}
}

func TestFilterDisabled(t *testing.T) {
	f := New(false)
	assert.False(t, f.Match("password: hunter2"))
	assert.False(t, f.Match("4111-1111-1111-1111"))
}
