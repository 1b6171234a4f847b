package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a file to settle.
const DefaultDebounce = 100 * time.Millisecond

// ChangeFunc is called after a watched dictionary has been refreshed.
// err is the result of validating the new instance.
type ChangeFunc func(d *Dictionary, err error)

// Watcher refreshes user dictionaries in a Cache when their files change.
//
// Parent directories are watched instead of the files themselves, so that
// editors replacing a file are noticed as well. Refreshes and ChangeFunc
// calls happen on the goroutine running Run, one at a time.
type Watcher struct {
	cache    *Cache
	logger   *slog.Logger
	onChange ChangeFunc
	debounce time.Duration

	watcher *fsnotify.Watcher

	// due receives paths whose debounce delay has passed.
	due      chan string
	stopped  chan struct{}
	stopOnce sync.Once

	mu     sync.Mutex
	paths  map[string]string // cleaned absolute path -> cache key
	dirs   map[string]struct{}
	timers map[string]*time.Timer
}

// NewWatcher creates a watcher refreshing dictionaries in c.
func NewWatcher(c *Cache, logger *slog.Logger, onChange ChangeFunc) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		cache:    c,
		logger:   logger,
		onChange: onChange,
		debounce: DefaultDebounce,
		watcher:  fw,
		due:      make(chan string),
		stopped:  make(chan struct{}),
		paths:    make(map[string]string),
		dirs:     make(map[string]struct{}),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// SetDebounce changes the settle delay. It must be called before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Add starts watching the user dictionary with the given cache key.
func (w *Watcher) Add(key string) error {
	abs, err := filepath.Abs(key)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", key, err)
	}
	abs = filepath.Clean(abs)
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.paths[abs] = key
	if _, ok := w.dirs[dir]; ok {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		delete(w.paths, abs)
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dirs[dir] = struct{}{}
	return nil
}

// Run processes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case path := <-w.due:
			w.refresh(path)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule(filepath.Clean(event.Name))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// schedule refreshes the dictionary at path once events stop arriving.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.paths[path]; !ok {
		return
	}

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		select {
		case w.due <- path:
		case <-w.stopped:
		}
	})
}

// refresh reloads the dictionary at path and reports it to onChange.
func (w *Watcher) refresh(path string) {
	w.mu.Lock()
	key, ok := w.paths[path]
	delete(w.timers, path)
	w.mu.Unlock()
	if !ok {
		return
	}

	w.logger.Debug("dictionary file changed", "path", path)

	d := w.cache.RefreshUser(key)
	err := d.Validate()
	if err != nil {
		w.logger.Warn("dictionary became invalid", "dictionary", d.String(), "error", err)
	}
	if w.onChange != nil {
		w.onChange(d, err)
	}
}

// stop cancels pending refreshes and releases timers waiting to deliver one.
func (w *Watcher) stop() {
	w.stopOnce.Do(func() {
		close(w.stopped)
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}

// Close stops watching all files.
func (w *Watcher) Close() error {
	w.stop()
	return w.watcher.Close()
}
