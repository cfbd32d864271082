package score

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"redcarpet/internal/logging"
)

// debounceWindow absorbs the burst of writes an editor or atomic rename
// produces before regrading once.
const debounceWindow = 500 * time.Millisecond

// Watcher regrades whenever the results file changes on disk. Useful while
// tuning thresholds: leave it running and every extract run prints a fresh
// grade.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	onWrite func()
}

// NewWatcher watches the results file at path and calls onWrite, debounced,
// after each change.
func NewWatcher(path string, onWrite func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("score: create watcher: %w", err)
	}
	// Watch the directory, not the file: atomic writers replace the file
	// and a watch on the old inode goes quiet.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("score: watch %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{path: path, watcher: fw, onWrite: onWrite}, nil
}

// Run blocks, dispatching debounced change notifications until the context
// is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logging.Get(logging.CategoryScore).Debug("results changed: %s", event)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, w.onWrite)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Get(logging.CategoryScore).Warn("watch error: %v", err)
		}
	}
}
