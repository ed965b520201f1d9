// Package watch reports writes to open files made by other processes.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"rocket/internal/system"
)

// settle is the window in which repeated events for one file collapse.
const settle = 500 * time.Millisecond

// Watcher watches the parent directories of tracked files, so files that
// are replaced by rename are still seen.
type Watcher struct {
	fw      *fsnotify.Watcher
	changes chan string

	mu       sync.Mutex
	files    map[string]bool
	dirs     map[string]bool
	lastSent map[string]time.Time
}

// New starts a watcher with nothing tracked.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:       fw,
		changes:  make(chan string, 16),
		files:    map[string]bool{},
		dirs:     map[string]bool{},
		lastSent: map[string]time.Time{},
	}
	go w.loop()
	return w, nil
}

// Changes delivers the absolute path of each modified tracked file. It is
// closed by Close.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Track replaces the tracked set with paths.
func (w *Watcher) Track(paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := map[string]bool{}
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range w.dirs {
		if !dirs[d] {
			_ = w.fw.Remove(d)
		}
	}
	for d := range dirs {
		if w.dirs[d] {
			continue
		}
		if err := w.fw.Add(d); err != nil {
			system.Logger.Warn("watch directory", "dir", d, "err", err)
			delete(dirs, d)
		}
	}
	w.files, w.dirs = files, dirs
}

// Tracked reports whether path is currently tracked.
func (w *Watcher) Tracked(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[abs]
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if p, ok := w.accept(ev.Name, time.Now()); ok {
				select {
				case w.changes <- p:
				default:
				}
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			system.Logger.Warn("watch", "err", err)
		}
	}
}

func (w *Watcher) accept(name string, now time.Time) (string, bool) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.files[abs] {
		return "", false
	}
	if now.Sub(w.lastSent[abs]) < settle {
		return "", false
	}
	w.lastSent[abs] = now
	return abs, true
}
