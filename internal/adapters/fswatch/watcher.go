// Package fswatch keeps a set of directories under fsnotify observation.
package fswatch

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	"obsidex/internal/logging"
)

// Watcher implements ports.DirectoryWatcher with fsnotify.
// Watches are per directory, so recursive coverage needs every level listed.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changes chan struct{} // One slot: a pending notification absorbs later ones
	errs    chan error
	logger  *slog.Logger

	mu      sync.Mutex // Serializes Replace and Close
	watched map[string]struct{}
	closed  bool

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// New starts an empty watcher
func New(logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 8),
		logger:  logging.ForComponent(logger, logging.CompWatcher),
		watched: make(map[string]struct{}),
		done:    make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Replace drops every current watch, then adds dirs (duplicates ignored).
// Directories that cannot be watched are skipped and reported in the returned error.
func (w *Watcher) Replace(dirs []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return errors.New("watcher closed")
	}

	for p := range w.watched {
		// The kernel drops watches of deleted directories on its own
		if err := w.fsw.Remove(p); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
			w.logger.Debug("remove watch failed", "path", p, "error", err)
		}
	}
	w.watched = make(map[string]struct{}, len(dirs))

	var errs []error
	for _, d := range dirs {
		if _, dup := w.watched[d]; dup {
			continue
		}
		if err := w.fsw.Add(d); err != nil {
			errs = append(errs, fmt.Errorf("watch %s: %w", d, err))
			continue
		}
		w.watched[d] = struct{}{}
	}

	w.logger.Debug("watch set replaced", "dirs", len(w.watched), "failed", len(errs))
	return errors.Join(errs...)
}

// Changes delivers one notification per burst of directory changes
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors delivers errors from the OS watch facility. Errors are dropped when nobody reads.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// WatchList returns the watched directories, sorted
func (w *Watcher) WatchList() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	list := w.fsw.WatchList()
	sort.Strings(list)
	return list
}

// Close stops event delivery and releases every watch handle. Safe to call twice.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.watched = nil
		w.mu.Unlock()

		close(w.done)
		w.closeErr = w.fsw.Close()
		w.wg.Wait()
	})
	return w.closeErr
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			w.logger.Debug("directory changed", "path", ev.Name, "op", ev.Op.String())
			w.notify()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
				w.logger.Warn("watch error dropped", "error", err)
			}
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

// relevant keeps entry additions, removals and renames.
// Content writes and attribute changes leave the tree shape untouched.
func relevant(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
