package resolver

import (
	"path/filepath"
	"strings"
)

// Breadcrumb describes where file sits below dir: the names of the
// directories between them, nearest to the file first, rendered as
// " /parent/grandparent". A file directly inside dir yields "".
func Breadcrumb(dir, file string) string {
	rel, err := filepath.Rel(dir, filepath.Dir(file))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	parts := strings.Split(rel, string(filepath.Separator))
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return " /" + strings.Join(parts, "/")
}
