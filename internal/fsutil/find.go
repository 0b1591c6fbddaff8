// Package fsutil provides filesystem helpers for corpus preparation.
package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFiles walks root recursively and returns every regular file whose
// base name matches the glob pattern (e.g. "*.wav"), in the deterministic
// lexicographic order of the walk.
//
// With includeRoot false, the returned paths are relative to root.
func FindFiles(root, pattern string, includeRoot bool) ([]string, error) {
	// Surface a bad pattern immediately instead of once per file.
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, _ := filepath.Match(pattern, d.Name())
		if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	if !includeRoot {
		prefix := strings.TrimSuffix(root, string(filepath.Separator)) + string(filepath.Separator)
		for i, file := range files {
			files[i] = strings.TrimPrefix(file, prefix)
		}
	}

	return files, nil
}
