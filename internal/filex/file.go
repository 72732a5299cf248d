// Package filex holds filesystem helpers shared by the stores and the
// report sinks.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and its parents when missing and returns its
// absolute path. Relative names resolve against the working directory; an
// empty name means the working directory itself.
func EnsureDir(dirName string) (string, error) {
	dir, err := filepath.Abs(dirName)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dirName, err)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
