package keys

import (
	"fmt"
	"path/filepath"
	"strings"
)

// sanitizeKey replaces spaces with hyphens and lowercases the string.
func sanitizeKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}

// Dataset returns the canonical object key for an archived dataset file,
// keyed by its source filename.
func Dataset(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fmt.Sprintf("datasets/%s.json", sanitizeKey(base))
}
