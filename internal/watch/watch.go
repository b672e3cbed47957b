// Package watch re-runs a bitmap query whenever its input file changes.
// Events are debounced so editors that write in several bursts trigger
// one re-run.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Stats tracks watcher activity for diagnostics and tests.
type Stats struct {
	Events    int
	Reruns    int
	Errors    int
	LastEvent time.Time
}

// Watcher monitors one bitmap file and invokes a callback after each
// debounced change. The containing directory is watched rather than the
// file itself: most editors replace files by rename, which would
// silently detach a direct file watch.
type Watcher struct {
	mu       sync.RWMutex
	fsw      *fsnotify.Watcher
	dir      string
	base     string
	debounce time.Duration
	onChange func()
	logger   *zap.Logger

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	stats   Stats
}

// New creates a Watcher for path. onChange runs on the watcher's
// goroutine; keep it short or hand off.
func New(path string, debounce time.Duration, logger *zap.Logger, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		fsw:      fsw,
		dir:      filepath.Dir(abs),
		base:     filepath.Base(abs),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the watcher runs until Stop is
// called or ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	w.logger.Debug("watching bitmap file",
		zap.String("dir", w.dir),
		zap.String("file", w.base))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
}

// Stats returns a snapshot of the watcher's counters.
func (w *Watcher) Stats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-fire:
			fire = nil
			w.mu.Lock()
			w.stats.Reruns++
			w.mu.Unlock()
			w.onChange()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != w.base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.mu.Lock()
			w.stats.Events++
			w.stats.LastEvent = time.Now()
			w.mu.Unlock()
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
			w.logger.Warn("file watcher error", zap.Error(err))
		}
	}
}
