package shaders

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/jhenstridge/go-inotify"
)

// settleTime gives editors a moment to finish writing before a reload.
const settleTime = 100 * time.Millisecond

// Watcher flags shader files as changed when they are rewritten.
// Directories are watched rather than the files themselves so that
// editors which save by renaming over the original are noticed too.
type Watcher struct {
	watcher *inotify.Watcher
	files   map[string]bool
	changed atomic.Bool
	notify  func()
	log     *slog.Logger
}

// Watch starts watching paths. notify is called from the watcher's
// goroutine after each relevant change and must be safe to call from
// any thread.
func Watch(paths []string, notify func(), logger *slog.Logger) (*Watcher, error) {
	w := newWatcher(paths, notify, logger)

	watcher, err := inotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not start inotify watcher: %w", err)
	}
	w.watcher = watcher

	dirs := make(map[string]bool)
	for p := range w.files {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		_, err = watcher.Watch(dir)
		if err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("could not watch %s: %w", dir, err)
		}
		w.log.Debug("Watching shader directory", "dir", dir)
	}

	go w.run()
	return w, nil
}

func newWatcher(paths []string, notify func(), logger *slog.Logger) *Watcher {
	w := &Watcher{
		files:  make(map[string]bool),
		notify: notify,
		log:    logger,
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = filepath.Clean(p)
		}
		w.files[abs] = true
	}
	return w
}

func (w *Watcher) run() {
	for ev := range w.watcher.Event {
		if !w.relevant(ev) {
			continue
		}
		w.log.Info("Reloading shaders due to inotify event", "file", filepath.Join(ev.Watch.Path, ev.Name))
		time.Sleep(settleTime)
		w.changed.Store(true)
		if w.notify != nil {
			w.notify()
		}
	}
}

// relevant reports whether ev rewrote one of the watched files. Events
// carry the name relative to the watched directory.
func (w *Watcher) relevant(ev inotify.Event) bool {
	if ev.Mask&(inotify.IN_CLOSE_WRITE|inotify.IN_MOVED_TO) == 0 {
		return false
	}
	if ev.Watch == nil || ev.Name == "" {
		return false
	}
	return w.files[filepath.Join(ev.Watch.Path, ev.Name)]
}

// Changed reports whether a watched file changed since the last call.
func (w *Watcher) Changed() bool {
	return w.changed.Swap(false)
}

func (w *Watcher) Close() error {
	if w.watcher == nil {
		return nil
	}
	return w.watcher.Close()
}
