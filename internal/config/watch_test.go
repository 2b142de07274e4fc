package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReloadsLoggingOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	reloaded := make(chan LoggingConfig, 1)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	w := NewWatcher(path, logger, func(lc LoggingConfig) {
		select {
		case reloaded <- lc:
		default:
		}
	})
	w.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Give the watcher time to register before writing.
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case lc := <-reloaded:
		if lc.Level != "debug" {
			t.Errorf("expected reloaded level debug, got %s", lc.Level)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	reloaded := make(chan LoggingConfig, 1)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	w := NewWatcher(path, logger, func(lc LoggingConfig) {
		select {
		case reloaded <- lc:
		default:
		}
	})
	w.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600); err != nil {
		t.Fatalf("writing sibling file: %v", err)
	}

	select {
	case <-reloaded:
		t.Error("sibling file must not trigger a reload")
	case <-time.After(500 * time.Millisecond):
	}
}
