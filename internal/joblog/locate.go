package joblog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Locate when no directory holds the target.
var ErrNotFound = errors.New("not found")

// Locate looks for rel in start and its ancestors, at most depth directories
// in total, and returns the first directory that holds it.
func Locate(start string, depth int, rel string, exists func(path string) bool) (string, error) {
	dir := filepath.Clean(start)
	for i := 0; i < depth; i++ {
		if exists(filepath.Join(dir, rel)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%w: %s within %d directories of %s", ErrNotFound, rel, depth, start)
}

// isFile reports whether path names an existing regular file.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
