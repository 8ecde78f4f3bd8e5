// Package sensitive vetoes clipboard text that looks like a secret so it
// never reaches the hashing, store or catalog layers.
package sensitive

import (
	"regexp"
	"strings"
)

// keywords are matched case-insensitively as substrings.
var keywords = []string{
	"password", "pwd", "pass:", "secret", "ssn", "card", "token",
	"api_key", "auth", "login", "credential", "2fa", "otp",
}

var (
	creditCardRe = regexp.MustCompile(`\b(?:\d{4}[- ]?){3}\d{4}\b`)
	ssnRe        = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
)

// Filter reports whether text should be skipped. A disabled filter
// passes everything through.
type Filter struct {
	Enabled bool
}

// New returns a filter honoring the skip_sensitive setting.
func New(enabled bool) *Filter {
	return &Filter{Enabled: enabled}
}

// Match reports whether text contains secret-like content. Always false
// when the filter is disabled.
func (f *Filter) Match(text string) bool {
	if !f.Enabled {
		return false
	}

	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	if creditCardRe.MatchString(text) {
		return true
	}
	return ssnRe.MatchString(text)
}
