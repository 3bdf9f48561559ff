package filesystem

import (
	"path/filepath"
	"strings"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// IdentifierFromPath derives a family identifier from a file path.
// Hidden files and non-Stockholm files yield false.
func IdentifierFromPath(path string) (string, bool) {
	return domain.IdentifierFromKey(filepath.ToSlash(path))
}

// ResolvePath converts a file:// URI to a local path.
// Bare paths pass through unchanged.
func ResolvePath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
