package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	uuid "github.com/satori/go.uuid"
)

// SanitizeFilename reduces a client-supplied filename to a safe base name.
// Returns "" when nothing usable remains.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}

	var b strings.Builder

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return ""
	}

	return cleaned
}

// DedupName derives a fresh name for a taken filename by inserting a
// random suffix before the extension.
func DedupName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	suffix := uuid.NewV4().String()[:8]

	return fmt.Sprintf("%s_%s%s", base, suffix, ext)
}
