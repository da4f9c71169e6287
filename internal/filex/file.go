// Package filex contains filesystem helpers for the client's local state.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path (mode 0700) and
// returns path unchanged. A bare file name needs no directory.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return path, nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return path, nil
}

// DefaultDataPath returns name inside the per-user config directory
// (e.g. ~/.config/fitcoach/name), falling back to the working directory.
func DefaultDataPath(name string) string {
	base, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(base, "fitcoach", name)
}
