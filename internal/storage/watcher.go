package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"smartclock/internal/ui/preferences"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of events editors emit on save.
const reloadDebounce = 300 * time.Millisecond

// WatchSettings calls onChange with freshly loaded settings whenever the
// file at configPath is written, created or replaced. The parent directory
// is watched so editors that save by rename are seen. Parse failures are
// logged and skipped. The watcher stops when ctx is done.
func WatchSettings(ctx context.Context, configPath string, logger *slog.Logger, onChange func(preferences.Settings)) error {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}
	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch settings dir %s: %w", dir, err)
	}

	reload := newDebouncer(reloadDebounce, func() {
		settings, err := LoadSettingsFile(configPath)
		if err != nil {
			logger.Warn("settings reload failed; keeping previous settings", "path", configPath, "err", err)
			return
		}
		logger.Info("settings reloaded", "path", configPath)
		onChange(settings)
	})

	go func() {
		defer watcher.Close()
		defer reload.stop()

		target := filepath.Clean(configPath)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					reload.trigger()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("settings watcher error", "err", err)
			}
		}
	}()

	return nil
}

type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func()
	timer   *time.Timer
	stopped bool
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (debounce *debouncer) trigger() {
	debounce.mu.Lock()
	defer debounce.mu.Unlock()
	if debounce.stopped {
		return
	}
	if debounce.timer != nil {
		debounce.timer.Stop()
	}
	debounce.timer = time.AfterFunc(debounce.delay, debounce.fn)
}

func (debounce *debouncer) stop() {
	debounce.mu.Lock()
	defer debounce.mu.Unlock()
	debounce.stopped = true
	if debounce.timer != nil {
		debounce.timer.Stop()
	}
}
