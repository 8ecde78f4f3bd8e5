package store

const maxSlugLen = 50

// Slug derives a filesystem-safe name fragment from the first line of
// text content: every rune outside [A-Za-z0-9-_] becomes '_' and the
// result is truncated to 50 characters.
func Slug(text string) string {
	out := make([]byte, 0, maxSlugLen)
	for _, r := range text {
		if len(out) >= maxSlugLen {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, byte(r))
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
