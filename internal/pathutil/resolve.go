// Package pathutil provides path resolution shared by the CLI and the
// configuration layer.
package pathutil

import (
	"os"
	"path/filepath"
)

// ResolveAbsolutePath expands a leading ~ to the home directory and converts
// the result to an absolute path. When the path exists, symlinks are resolved
// so two spellings of the same location compare equal.
func ResolveAbsolutePath(path string) (string, error) {
	if path == "" {
		return os.Getwd()
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = home + path[1:]
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		return resolved, nil
	}
	return absPath, nil
}
