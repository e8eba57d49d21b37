package utils

import "path/filepath"

// ResolvePath resolves path relative to baseDir. Absolute paths are
// returned unchanged, and an empty path stays empty so unset options
// remain unset.
func ResolvePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
