package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Store.Endpoint == "" {
		t.Error("expected default store endpoint")
	}
	if cfg.Namespaces.Entity != "http://kg.gaung.org/entity/" {
		t.Errorf("unexpected entity namespace: %s", cfg.Namespaces.Entity)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not fail: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("expected defaults, got port %d", cfg.Server.Port)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: 8080
  base_path: /kg/
store:
  endpoint: http://graphdb:7200/repositories/test
logging:
  level: debug
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.BasePath != "/kg" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.Server.BasePath)
	}
	if cfg.Store.Endpoint != "http://graphdb:7200/repositories/test" {
		t.Errorf("unexpected endpoint: %s", cfg.Store.Endpoint)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
	// Unset file keys keep their defaults.
	if cfg.Namespaces.Property != "http://kg.gaung.org/property/" {
		t.Errorf("unexpected property namespace: %s", cfg.Namespaces.Property)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("GA_PORT", "9090")
	t.Setenv("GA_STORE_ENDPOINT", "http://env:7200/repositories/kg")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("env must beat file, got port %d", cfg.Server.Port)
	}
	if cfg.Store.Endpoint != "http://env:7200/repositories/kg" {
		t.Errorf("unexpected endpoint: %s", cfg.Store.Endpoint)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("GA_PORT", "0")
	if _, err := Load(""); err == nil {
		t.Error("expected validation error for port 0")
	}
}

func TestLoad_MissingNamespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("namespaces:\n  entity: \"\"\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	// The file explicitly blanks a required namespace.
	cfg := Default()
	if err := cfg.loadFromFile(path); err != nil {
		t.Fatalf("loading file: %v", err)
	}
	if err := cfg.validate(); err == nil {
		t.Error("expected validation error for empty namespace")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
