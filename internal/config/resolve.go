package config

import (
	"os"
	"path/filepath"
)

// resolveConfigPath turns a user-supplied path into a concrete config file
// path: if path already names an existing file, it's used as-is; if path
// names a directory (or is empty), filename is looked up inside it. Returns
// "" if no candidate file exists.
func resolveConfigPath(path, filename string) string {
	if path == "" {
		path = "."
	}

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path
	}

	candidate := filepath.Join(path, filename)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}
