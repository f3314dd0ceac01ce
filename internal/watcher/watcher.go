// Package watcher reports debounced filesystem changes for a watched
// Markdown file or directory tree.
package watcher

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period a burst of change events must settle
// for before the callback fires.
const DefaultDebounce = 200 * time.Millisecond

// Watcher invokes a callback with the changed path once per debounced burst
// of filesystem change events.
type Watcher struct {
	fsw    *fsnotify.Watcher
	deb    *debouncer
	target string
	isDir  bool

	done      chan struct{}
	closeOnce sync.Once
}

// New watches target, which may be a Markdown file or a directory tree, and
// calls fn with the changed path once per debounced burst. Close releases
// the watch.
func New(target string, debounce time.Duration, fn func(path string)) (*Watcher, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", target, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		fsw:    fsw,
		deb:    newDebouncer(debounce, fn),
		target: filepath.Clean(target),
		isDir:  info.IsDir(),
		done:   make(chan struct{}),
	}

	// Watch directories, not files: editors commonly replace a file on
	// save, which would silently drop a watch on the file itself.
	if w.isDir {
		err = filepath.WalkDir(w.target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return fsw.Add(path)
			}
			return nil
		})
	} else {
		err = fsw.Add(filepath.Dir(w.target))
	}
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", target, err)
	}

	go w.loop()
	return w, nil
}

// Close releases the underlying OS watch. No callbacks are delivered after
// Close returns, even if a debounced change was pending.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.deb.stop()
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				w.deb.trigger(ev.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("watch error", "target", w.target, "error", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	if w.isDir {
		return strings.EqualFold(filepath.Ext(ev.Name), ".md")
	}
	return filepath.Clean(ev.Name) == w.target
}
