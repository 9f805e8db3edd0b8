package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Log.Level)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults were not persisted: %v", err)
	}

	// A second load must parse what the first one wrote.
	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if again.Agent.Name != cfg.Agent.Name {
		t.Errorf("agent name changed across loads: %q vs %q", again.Agent.Name, cfg.Agent.Name)
	}
}

func TestLoadParsesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[agent]
name = "desk-pc"
keep_awake = false

[network]
host_addr = "192.168.1.10:8080"
udp_port = 9999

[log]
level = "debug"
add_source = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Agent.Name != "desk-pc" || cfg.Agent.KeepAwake {
		t.Errorf("agent section not parsed: %+v", cfg.Agent)
	}
	if cfg.Network.HostAddr != "192.168.1.10:8080" || cfg.Network.UDPPort != 9999 {
		t.Errorf("network section not parsed: %+v", cfg.Network)
	}
	if cfg.SlogLevel() != slog.LevelDebug || !cfg.Log.AddSource {
		t.Errorf("log section not parsed: %+v", cfg.Log)
	}
}

func TestSlogLevelFallsBackToInfo(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"ERROR":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for level, want := range cases {
		cfg := Default()
		cfg.Log.Level = level
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", level, got, want)
		}
	}
}

func TestManagerGetReturnsLoadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	mgr, err := NewManager(path, nil)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer mgr.Close()

	if mgr.Path() != path {
		t.Errorf("Path() = %q, want %q", mgr.Path(), path)
	}
	if mgr.Get() == nil {
		t.Fatal("Get() returned nil config")
	}
}
