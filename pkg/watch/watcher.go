package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
)

// Config configures a continuous-conformance watcher.
type Config struct {
	// Dir is the artifact directory to watch.
	Dir string

	// DebounceInterval is the quiet period after a file event before
	// re-validation triggers.
	DebounceInterval time.Duration

	// Extensions lists the artifact file extensions that trigger
	// re-validation.
	Extensions []string

	// SweepSchedule is an optional standard cron expression for periodic
	// re-validation independent of file events, catching changes the
	// notifier missed. Empty disables sweeps.
	SweepSchedule string
}

// Watcher re-runs validation of a directory artifact whenever its files
// change, with debouncing to absorb event storms, plus optional scheduled
// sweeps.
type Watcher struct {
	config   Config
	logger   *slog.Logger
	debounce *debouncer

	mu      sync.Mutex
	running bool
}

// New creates a watcher for the configured artifact directory.
func New(cfg Config, logger *slog.Logger) (*Watcher, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("watch: no artifact directory configured")
	}
	if cfg.DebounceInterval <= 0 {
		cfg.DebounceInterval = 200 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SweepSchedule != "" {
		if _, err := cron.ParseStandard(cfg.SweepSchedule); err != nil {
			return nil, fmt.Errorf("watch: invalid sweep schedule %q: %w", cfg.SweepSchedule, err)
		}
	}

	return &Watcher{
		config:   cfg,
		logger:   logger,
		debounce: newDebouncer(cfg.DebounceInterval),
	}, nil
}

// Run validates once immediately, then blocks re-validating on every relevant
// file event (and on the sweep schedule, if configured) until the context is
// cancelled. Errors from revalidate are logged, not fatal: a bad artifact
// drop must not stop the watch.
func (w *Watcher) Run(ctx context.Context, revalidate func() error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watch: already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: failed to create notifier: %w", err)
	}
	defer notifier.Close()

	if err := notifier.Add(w.config.Dir); err != nil {
		return fmt.Errorf("watch: failed to watch %q: %w", w.config.Dir, err)
	}

	var sweeper *cron.Cron
	if w.config.SweepSchedule != "" {
		sweeper = cron.New()
		if _, err := sweeper.AddFunc(w.config.SweepSchedule, func() {
			w.logger.Info("sweep triggered", "schedule", w.config.SweepSchedule)
			if err := revalidate(); err != nil {
				w.logger.Error("sweep validation failed", "error", err)
			}
		}); err != nil {
			return fmt.Errorf("watch: failed to schedule sweep: %w", err)
		}
		sweeper.Start()
		defer sweeper.Stop()
	}

	w.logger.Info("watching artifact directory",
		"dir", w.config.Dir,
		"debounce_ms", w.config.DebounceInterval.Milliseconds(),
		"sweep_schedule", w.config.SweepSchedule,
	)

	if err := revalidate(); err != nil {
		w.logger.Error("initial validation failed", "error", err)
	}

	defer w.debounce.stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return nil

		case event, ok := <-notifier.Events:
			if !ok {
				return fmt.Errorf("watch: events channel closed")
			}
			if !w.shouldProcess(event) {
				continue
			}
			w.logger.Debug("artifact event", "path", event.Name, "op", event.Op.String())

			w.debounce.trigger(func() {
				w.logger.Info("re-validating artifact directory", "trigger", event.Name)
				if err := revalidate(); err != nil {
					w.logger.Error("validation failed", "error", err)
				}
			})

		case err, ok := <-notifier.Errors:
			if !ok {
				return fmt.Errorf("watch: errors channel closed")
			}
			// Keep watching; a transient notifier error is not fatal.
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// shouldProcess filters events down to content changes of artifact files.
func (w *Watcher) shouldProcess(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(name))
	for _, valid := range w.config.Extensions {
		if ext == strings.ToLower(valid) {
			return true
		}
	}
	return false
}

// debouncer collapses rapid event bursts into one callback after a quiet
// period.
type debouncer struct {
	interval time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	callback func()
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		cb := d.callback
		stopped := d.stopped
		d.mu.Unlock()

		if cb != nil && !stopped {
			cb()
		}
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
