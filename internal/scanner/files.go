package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// sourceExt is the extension of files eligible for scanning.
const sourceExt = ".py"

// FindSourceFiles walks baseDir and returns every source file, pruning
// excluded and hidden directories at the directory level so their subtrees
// are never descended into. Traversal is lexical, so results are
// deterministic for a fixed tree. No symlink-loop protection is attempted.
func FindSourceFiles(baseDir string, excludeDirs []string) ([]string, error) {
	excluded := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		excluded[d] = true
	}

	var files []string
	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == baseDir {
				return nil
			}
			name := d.Name()
			if excluded[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), sourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
