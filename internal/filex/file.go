// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and parents) when missing and returns its absolute
// path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return abs, nil
}

// DefaultDataDir resolves the per-user data directory for the client,
// falling back to the working directory when the user config dir is
// unavailable.
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".agora"
	}
	return filepath.Join(base, "agora")
}
