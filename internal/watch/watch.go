// Package watch re-runs a conversion whenever the watched document changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/sftype/internal/ports"
)

// RunFunc performs one conversion.
type RunFunc func(ctx context.Context) error

// Config holds configuration options for the watcher.
type Config struct {
	// Path is the file to watch.
	Path string

	// DebounceDelay is the quiet period after the last change before running.
	// Default: 500 milliseconds
	DebounceDelay time.Duration
}

// Watcher runs a conversion once, then again after every change to a file.
// The parent directory is watched so editors that save by rename are seen.
type Watcher struct {
	path     string
	debounce time.Duration
	run      RunFunc
	logger   ports.Logger

	mu      sync.Mutex
	timer   *time.Timer
	trigger chan struct{}
	runs    int
}

// New creates a watcher for cfg.Path.
func New(cfg Config, run RunFunc, logger ports.Logger) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("watch: path is required")
	}
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 500 * time.Millisecond
	}
	return &Watcher{
		path:     abs,
		debounce: cfg.DebounceDelay,
		run:      run,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
	}, nil
}

// Runs returns how many conversions have been started.
func (w *Watcher) Runs() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.runs
}

// Watch blocks until ctx is canceled. Conversion errors are logged and do not
// stop the watcher.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	w.logger.Info("watching document", ports.String("path", w.path), ports.Duration("debounce", w.debounce))

	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("document changed", ports.String("op", event.Op.String()))
			w.schedule()

		case <-w.trigger:
			w.runOnce(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", ports.Err(err))
		}
	}
}

// schedule (re)starts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.trigger <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	w.mu.Lock()
	w.runs++
	n := w.runs
	w.mu.Unlock()

	start := time.Now()
	if err := w.run(ctx); err != nil {
		w.logger.Error("conversion failed", ports.Int("run", n), ports.Err(err))
		return
	}
	w.logger.Info("conversion finished", ports.Int("run", n), ports.Duration("took", time.Since(start)))
}
