// Package watch reports changes to the logs file.
package watch

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a burst of writes is collected before
// reacting to it.
const DefaultDebounce = time.Second

// Watcher calls back whenever a file changes.
type Watcher struct {
	Path     string
	Debounce time.Duration
	// Log receives watcher errors that do not stop the watch. Nil discards them.
	Log *log.Logger
}

// Run calls onChange once, then after every burst of changes to Path, until
// ctx is done. The parent directory is watched so that files replaced by
// rename are followed too.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	logger := w.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	target := filepath.Clean(w.Path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watcher.Add: %w", err)
	}

	onChange()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher.Events closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if pending == nil {
				pending = time.After(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher.Errors closed")
			}
			logger.Printf("watcher error: %v", err)

		case <-pending:
			pending = nil
			onChange()
		}
	}
}
