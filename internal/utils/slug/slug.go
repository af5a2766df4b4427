package utils

import "strings"

// Make builds a URL-safe slug: lowercase, non-alphanumeric runs
// collapsed to single dashes.
func Make(s string) string {
	var b strings.Builder

	dash := false

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
