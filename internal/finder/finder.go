// Package finder locates a default document to preview when none is given
// on the command line.
package finder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindReadme looks for a README.md file (case-insensitive) in dir and
// returns its absolute path with original casing.
func FindReadme(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(entry.Name(), "readme.md") {
			return filepath.Abs(filepath.Join(dir, entry.Name()))
		}
	}

	return "", fmt.Errorf("no README.md found in %s", dir)
}
