package data

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"algoeconomics/internal/config"
	"algoeconomics/internal/debounce"
	"algoeconomics/internal/model"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultReloadDelay batches the burst of events an editor save produces.
const DefaultReloadDelay = 200 * time.Millisecond

// WatcherStats counts watcher activity.
type WatcherStats struct {
	Events   int
	Reloads  int
	Failures int
	LastErr  string
}

// PresetWatcher reloads a preset file into a PresetStore whenever the file
// changes. The directory is watched rather than the file so that editors
// which save by rename are still seen. A file that fails to load leaves the
// current presets in place.
type PresetWatcher struct {
	mu       sync.Mutex
	path     string
	store    *PresetStore
	watcher  *fsnotify.Watcher
	debounce *debounce.Debouncer
	logger   *zap.Logger
	onReload func(*model.PresetSet)
	stats    WatcherStats
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
}

type WatcherOption func(*PresetWatcher)

func WithReloadDelay(d time.Duration) WatcherOption {
	return func(w *PresetWatcher) { w.debounce = debounce.New(d) }
}

func WithWatcherLogger(l *zap.Logger) WatcherOption {
	return func(w *PresetWatcher) { w.logger = l }
}

// OnReload registers a callback run after each successful reload.
func OnReload(fn func(*model.PresetSet)) WatcherOption {
	return func(w *PresetWatcher) { w.onReload = fn }
}

func NewPresetWatcher(path string, store *PresetStore, opts ...WatcherOption) (*PresetWatcher, error) {
	if path == "" {
		return nil, errors.New("preset file path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &PresetWatcher{
		path:     filepath.Clean(abs),
		store:    store,
		watcher:  fw,
		debounce: debounce.New(DefaultReloadDelay),
		logger:   zap.NewNop(),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Reload loads the file now and swaps it into the store.
func (w *PresetWatcher) Reload() error {
	set, err := config.LoadPresetSet(w.path)

	w.mu.Lock()
	if err != nil {
		w.stats.Failures++
		w.stats.LastErr = err.Error()
		w.mu.Unlock()
		w.logger.Warn("preset reload failed, keeping current presets",
			zap.String("path", w.path), zap.Error(err))
		return err
	}
	w.stats.Reloads++
	w.stats.LastErr = ""
	fn := w.onReload
	w.mu.Unlock()

	w.store.Swap(set)
	w.logger.Info("presets reloaded", zap.String("path", w.path), zap.Strings("presets", set.Names()))
	if fn != nil {
		fn(set)
	}
	return nil
}

// Start watches the file's directory until ctx is done or Stop is called.
func (w *PresetWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.running = true
	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the OS watcher.
func (w *PresetWatcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	w.debounce.Stop()
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("closing preset watcher", zap.Error(err))
	}
}

func (w *PresetWatcher) run(ctx context.Context) {
	defer close(w.doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("preset watcher error", zap.Error(err))
		}
	}
}

func (w *PresetWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	w.mu.Lock()
	w.stats.Events++
	w.mu.Unlock()
	w.debounce.Trigger(func() { _ = w.Reload() })
}

func (w *PresetWatcher) Stats() WatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}
