package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file on change and hands the fresh
// logging section to a callback. Only the logging section is applied
// at runtime; server, store, and namespace changes require a restart.
type Watcher struct {
	path     string
	logger   *slog.Logger
	debounce time.Duration
	onReload func(LoggingConfig)
}

// NewWatcher creates a config file watcher.
func NewWatcher(path string, logger *slog.Logger, onReload func(LoggingConfig)) *Watcher {
	return &Watcher{
		path:     path,
		logger:   logger.With(slog.String("component", "config-watcher")),
		debounce: time.Second,
		onReload: onReload,
	}
}

// Start blocks until ctx is canceled. Editors often replace the file
// rather than write in place, so the parent directory is watched and
// events are filtered by name.
func (w *Watcher) Start(ctx context.Context) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Warn("fsnotify unavailable, config hot-reload disabled", "error", err)
		return
	}
	defer fw.Close() //nolint:errcheck

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		w.logger.Warn("watching config directory failed", "dir", dir, "error", err)
		return
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		case <-fire:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed, keeping previous settings", "error", err)
		return
	}
	w.logger.Info("config reloaded", "path", w.path)
	w.onReload(cfg.Logging)
}
