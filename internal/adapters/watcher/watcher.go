// Package watcher provides an fsnotify-backed recursive file watcher.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// shouldSkipDirectories are directories that should not be watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

const eventChannelBuffer = 100

// Watcher implements file system watching using fsnotify. It reports
// directory events separately from file events, which fsnotify does not do
// on its own for removals, by remembering every directory it watches.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	log       ports.Logger
	events    chan ports.WatchEvent

	mu   sync.Mutex
	dirs map[string]struct{}
}

// NewWatcher creates a new file system watcher.
func NewWatcher(log ports.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	return &Watcher{
		fsWatcher: watcher,
		log:       log,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		dirs:      make(map[string]struct{}),
	}, nil
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range w.watchRecursively(root) {
		if err := w.addDir(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", dir)
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Add registers an additional path. Directories are watched recursively.
func (w *Watcher) Add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", path)
	}
	if !info.IsDir() {
		if err := w.fsWatcher.Add(path); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", path)
		}
		return nil
	}
	for dir := range w.watchRecursively(path) {
		if err := w.addDir(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", dir)
		}
	}
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) addDir(dir string) error {
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	w.mu.Lock()
	w.dirs[dir] = struct{}{}
	w.mu.Unlock()
	return nil
}

// forgetDir drops dir and everything below it, reporting whether dir was known.
func (w *Watcher) forgetDir(dir string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, known := w.dirs[dir]
	prefix := dir + string(filepath.Separator)
	for d := range w.dirs {
		if d == dir || strings.HasPrefix(d, prefix) {
			delete(w.dirs, d)
		}
	}
	return known
}

// watchRecursively walks the directory tree and yields all directories.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // skip directories that vanished or cannot be read
			}
			if d.IsDir() {
				if path != root && w.shouldSkip(d.Name()) {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// shouldSkip returns true if the directory should be skipped.
func (w *Watcher) shouldSkip(name string) bool {
	return shouldSkipDirectories[name]
}

// processEvents converts raw fsnotify events into ports.WatchEvent values.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			for _, watchEvent := range w.convertEvent(event) {
				select {
				case w.events <- watchEvent:
				case <-ctx.Done():
					return
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("file system watch error", "error", err.Error())
		}
	}
}

// convertEvent maps one fsnotify event to zero or more watch events. A newly
// created directory is watched and its existing contents are reported too,
// since they may have been created before the watch was in place.
func (w *Watcher) convertEvent(event fsnotify.Event) []ports.WatchEvent {
	path := event.Name

	switch {
	case event.Has(fsnotify.Create):
		info, err := os.Stat(path)
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return []ports.WatchEvent{{Path: path, Operation: ports.OpAdd}}
		}
		if w.shouldSkip(info.Name()) {
			return nil
		}
		return w.reportNewTree(path)

	case event.Has(fsnotify.Write):
		return []ports.WatchEvent{{Path: path, Operation: ports.OpChange}}

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		if w.forgetDir(path) {
			return []ports.WatchEvent{{Path: path, Operation: ports.OpUnlinkDir}}
		}
		return []ports.WatchEvent{{Path: path, Operation: ports.OpUnlink}}
	}

	return nil
}

func (w *Watcher) reportNewTree(root string) []ports.WatchEvent {
	var out []ports.WatchEvent
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // the tree may change while it is walked
		}
		if !d.IsDir() {
			out = append(out, ports.WatchEvent{Path: path, Operation: ports.OpAdd})
			return nil
		}
		if path != root && w.shouldSkip(d.Name()) {
			return fs.SkipDir
		}
		if err := w.addDir(path); err != nil {
			w.log.Warn("failed to watch directory", "path", path, "error", err.Error())
		}
		out = append(out, ports.WatchEvent{Path: path, Operation: ports.OpAddDir})
		return nil
	})
	return out
}
