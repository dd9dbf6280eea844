package joblog_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Tiliavir/joblog/internal/joblog"
)

func existsIn(paths ...string) func(string) bool {
	set := map[string]bool{}
	for _, p := range paths {
		set[filepath.Clean(p)] = true
	}
	return func(p string) bool { return set[p] }
}

func TestLocate(t *testing.T) {
	rel := filepath.Join(".joblog", "logs")
	tests := []struct {
		name   string
		start  string
		depth  int
		exists func(string) bool
		want   string
	}{
		{"here", "/home/u/work", 10, existsIn("/home/u/work/.joblog/logs"), "/home/u/work"},
		{"parent", "/home/u/work/src/pkg", 10, existsIn("/home/u/work/.joblog/logs"), "/home/u/work"},
		{"nearest wins", "/home/u/work/src", 10, existsIn("/home/u/.joblog/logs", "/home/u/work/src/.joblog/logs"), "/home/u/work/src"},
		{"last searched directory", "/a/b/c", 3, existsIn("/a/.joblog/logs"), "/a"},
		{"root", "/a/b", 10, existsIn("/.joblog/logs"), "/"},
	}
	for _, tt := range tests {
		got, err := joblog.Locate(tt.start, tt.depth, rel, tt.exists)
		if err != nil {
			t.Errorf("%s: Locate: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Locate = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLocateNotFound(t *testing.T) {
	rel := filepath.Join(".joblog", "logs")
	tests := []struct {
		name   string
		start  string
		depth  int
		exists func(string) bool
	}{
		{"nothing", "/home/u/work", 10, existsIn()},
		{"beyond depth", "/a/b/c/d", 3, existsIn("/a/.joblog/logs")},
		{"zero depth", "/a", 0, existsIn("/a/.joblog/logs")},
	}
	for _, tt := range tests {
		if _, err := joblog.Locate(tt.start, tt.depth, rel, tt.exists); !errors.Is(err, joblog.ErrNotFound) {
			t.Errorf("%s: Locate error = %v, want ErrNotFound", tt.name, err)
		}
	}
}
