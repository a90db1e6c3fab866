package discovery

import (
	"os"
	"path/filepath"
	"strings"
)

// Scanner finds test files in a directory tree.
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directory names to prune.
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all regular files under root whose base name matches pattern
// (a filepath.Match glob). Pruned and hidden directories are never entered.
// A non-existent root yields an empty result, not an error. Results follow
// the walk's lexical order.
func (s *Scanner) Scan(root, pattern string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if matched, err := filepath.Match(pattern, d.Name()); err == nil && matched {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}
