// Package config provides configuration management for the injection agent.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
)

// Config represents the agent configuration.
type Config struct {
	Agent   AgentConfig   `toml:"agent"`
	Network NetworkConfig `toml:"network"`
	Log     LogConfig     `toml:"log"`
}

// AgentConfig contains agent identity and behavior settings.
type AgentConfig struct {
	// Name identifies this agent to the capture host.
	Name string `toml:"name"`

	// KeepAwake nudges the system periodically so a remote-controlled
	// machine does not sleep mid-session.
	KeepAwake bool `toml:"keep_awake"`

	// ManageFirewall creates an inbound rule for the event stream port on
	// startup (Windows only, may prompt for elevation).
	ManageFirewall bool `toml:"manage_firewall"`
}

// NetworkConfig contains transport settings.
type NetworkConfig struct {
	// HostAddr is the capture host's "ip:port" address.
	HostAddr string `toml:"host_addr"`

	// Token authenticates the WebSocket control channel.
	Token string `toml:"token"`

	// UDPPort is the local port opened for the binary event stream.
	// 0 picks an ephemeral port.
	UDPPort int `toml:"udp_port"`
}

// LogConfig contains diagnostic output settings.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`

	// AddSource annotates log entries with file:line of the call site.
	AddSource bool `toml:"add_source"`
}

// Default returns the default configuration.
func Default() *Config {
	host, _ := os.Hostname()
	if host == "" {
		host = "winject-agent"
	}
	return &Config{
		Agent: AgentConfig{
			Name:           host,
			KeepAwake:      true,
			ManageFirewall: false,
		},
		Network: NetworkConfig{
			HostAddr: "",
			UDPPort:  0,
		},
		Log: LogConfig{
			Level:     "info",
			AddSource: false,
		},
	}
}

// SlogLevel converts the configured level string to a slog.Level.
// Unknown strings fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "winject", "config.toml"), nil
}

// Load reads the config file at path, writing the defaults there first if it
// does not exist yet.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config as TOML, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Manager holds the live configuration and reloads it when the file changes
// on disk.
type Manager struct {
	path    string
	log     *slog.Logger
	watcher *fsnotify.Watcher

	mu        sync.RWMutex
	cfg       *Config
	listeners []func(*Config)
}

// NewManager loads the config at path (or the default location when path is
// empty) and returns a manager around it.
func NewManager(path string, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Manager{path: path, log: logger, cfg: cfg}, nil
}

// Get returns the current configuration snapshot.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// Path returns the config file location backing this manager.
func (m *Manager) Path() string { return m.path }

// OnChange registers a callback invoked with the new config after each
// successful reload. Callbacks run on the watcher goroutine.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Watch starts the fsnotify watcher on the config file's directory. Watching
// the directory rather than the file survives editors that replace the file
// on save.
func (m *Manager) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(m.path)); err != nil {
		watcher.Close()
		return err
	}
	m.watcher = watcher

	go m.watchLoop()
	return nil
}

// Close stops the watcher.
func (m *Manager) Close() error {
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}

func (m *Manager) watchLoop() {
	for {
		select {
		case ev, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != m.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			m.reload()

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.log.Warn("config watcher error", "err", err)
		}
	}
}

func (m *Manager) reload() {
	cfg, err := Load(m.path)
	if err != nil {
		m.log.Warn("config reload failed, keeping previous config", "err", err)
		return
	}

	m.mu.Lock()
	m.cfg = cfg
	listeners := make([]func(*Config), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	m.log.Info("config reloaded", "path", m.path)
	for _, fn := range listeners {
		fn(cfg)
	}
}
