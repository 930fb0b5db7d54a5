package archive

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CompressedPath returns the name of the compressed artifact for path.
func (a *Archiver) CompressedPath(path string) string {
	return path + a.cfg.Suffix
}

// ReconstructedPath returns the name of the decompressed artifact for the
// compressed artifact at path: the suffix is removed and the marker inserted
// before the original extension.
func (a *Archiver) ReconstructedPath(path string) (string, error) {
	if !strings.HasSuffix(path, a.cfg.Suffix) || len(path) == len(a.cfg.Suffix) {
		return "", fmt.Errorf("%w: %q lacks %q", ErrNotCompressed, path, a.cfg.Suffix)
	}
	original := strings.TrimSuffix(path, a.cfg.Suffix)
	ext := filepath.Ext(original)
	return strings.TrimSuffix(original, ext) + a.cfg.Marker + ext, nil
}
