package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

// listMatching returns the paths of regular files in dir whose base name
// matches pattern, sorted lexicographically for deterministic batches.
func listMatching(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading directory %s: %w", domain.ErrLoad, dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: bad file pattern %q: %w", domain.ErrInvalidInput, pattern, err)
		}
		if ok {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// baseName strips the directory and extension from a file path.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
