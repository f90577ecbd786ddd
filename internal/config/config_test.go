package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}
	if cfg.Server.WebSocket.Address != ":8089" {
		t.Fatalf("default websocket address: %s", cfg.Server.WebSocket.Address)
	}
	if cfg.Engine.SolverMaxDepth != 12 {
		t.Fatalf("default solver depth: %d", cfg.Engine.SolverMaxDepth)
	}
	if cfg.Database.Enabled {
		t.Fatal("database should default to disabled")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("logging:\n  level: debug\nengine:\n  solver_max_depth: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level: %s", cfg.Logging.Level)
	}
	if cfg.Engine.SolverMaxDepth != 5 {
		t.Fatalf("solver depth: %d", cfg.Engine.SolverMaxDepth)
	}
	// Untouched keys keep their defaults.
	if cfg.Engine.MaxSessions != 256 {
		t.Fatalf("max sessions: %d", cfg.Engine.MaxSessions)
	}
}

func TestLoadRejectsEnabledDBWithoutURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("database:\n  enabled: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for enabled database without url")
	}
}
