package watcher

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

// Watcher reports writes to a fixed set of files using fsnotify.
// Parent directories are watched so that editors replacing files by rename are still seen.
type Watcher struct {
	window    time.Duration
	logger    ports.Logger
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	files     map[string]string
	changes   chan []string
	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher creates a watcher. No OS resources are held until Start.
func NewWatcher(window time.Duration, logger ports.Logger) *Watcher {
	return &Watcher{
		window:  window,
		logger:  logger,
		changes: make(chan []string),
		done:    make(chan struct{}),
	}
}

// Start begins watching paths. Changes are reported with the paths exactly as given.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	w.files = make(map[string]string, len(paths))
	var dirs []string
	for _, path := range paths {
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			_ = fsWatcher.Close()
			return zerr.With(zerr.Wrap(absErr, domain.ErrWatchFailed.Error()), "path", path)
		}
		w.files[abs] = path
		dirs = append(dirs, filepath.Dir(abs))
	}

	slices.Sort(dirs)
	for _, dir := range slices.Compact(dirs) {
		if addErr := fsWatcher.Add(dir); addErr != nil {
			_ = fsWatcher.Close()
			return zerr.With(zerr.Wrap(addErr, domain.ErrWatchFailed.Error()), "path", dir)
		}
	}

	w.fsWatcher = fsWatcher
	w.debouncer = NewDebouncer(w.window, w.emit)

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.finish()
	if w.fsWatcher == nil {
		return nil
	}
	return w.fsWatcher.Close()
}

// Changes yields batches of changed paths until the watcher stops.
func (w *Watcher) Changes() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for {
			select {
			case <-w.done:
				return
			case batch := <-w.changes:
				if !yield(batch) {
					return
				}
			}
		}
	}
}

func (w *Watcher) emit(paths []string) {
	select {
	case w.changes <- paths:
	case <-w.done:
	}
}

func (w *Watcher) finish() {
	w.closeOnce.Do(func() { close(w.done) })
}

// processEvents forwards writes to watched files into the debouncer.
func (w *Watcher) processEvents(ctx context.Context) {
	defer w.finish()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if path, watched := w.files[filepath.Clean(event.Name)]; watched {
				w.debouncer.Add(path)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}
