// WInject - remote input injection agent
// Receives captured input events from a capture host and replays them at the
// OS input layer, as if they came from local hardware.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"winject/internal/config"
	"winject/internal/event"
	"winject/internal/inject"
	"winject/internal/network"
	"winject/internal/osutils"
	"winject/internal/tray"
)

var (
	version = "0.1.0"
	cfgPath = flag.String("config", "", "Path to config file (defaults to the user config dir)")
	showVer = flag.Bool("version", false, "Show version")
	noTray  = flag.Bool("no-tray", false, "Run headless without the system tray icon")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("winject version %s\n", version)
		return
	}

	cfgMgr, err := config.NewManager(*cfgPath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	defer cfgMgr.Close()

	cfg := cfgMgr.Get()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     cfg.SlogLevel(),
		AddSource: cfg.Log.AddSource,
	}))
	slog.SetDefault(logger)

	runAgent(cfgMgr, logger)
}

func runAgent(cfgMgr *config.Manager, logger *slog.Logger) {
	cfg := cfgMgr.Get()

	if cfg.Network.HostAddr == "" {
		logger.Error("no capture host configured, set network.host_addr",
			"config", cfgMgr.Path())
		os.Exit(1)
	}

	if cfg.Agent.ManageFirewall && cfg.Network.UDPPort > 0 {
		if err := osutils.EnsureFirewallRule(cfg.Network.UDPPort); err != nil {
			logger.Warn("firewall rule setup failed", "err", err)
		}
	}

	injector := inject.NewSystem(logger)

	// The tray toggle flips this; paused events are dropped before they
	// reach the injector.
	var paused atomic.Bool
	post := func(ev event.Event) {
		if paused.Load() {
			return
		}
		injector.Post(ev)
	}

	done := make(chan struct{})

	// Prefer the binary UDP stream; fall back to the WebSocket control
	// channel when the UDP path is blocked.
	udp := network.NewUDPReceiver(cfg.Network.HostAddr, cfg.Network.UDPPort, logger)
	udp.OnEvent = post

	var ws *network.WSClient
	if udp.Probe() {
		if err := udp.Start(); err != nil {
			logger.Error("failed to start udp receiver", "err", err)
			os.Exit(1)
		}
		defer udp.Stop()
	} else {
		ws = network.NewWSClient(cfg.Network.HostAddr, cfg.Network.Token,
			cfg.Agent.Name, version, logger)
		ws.OnEvent = post
		ws.Start()
		defer ws.Close()
	}

	if cfg.Agent.KeepAwake {
		go keepAwakeLoop(done)
	}

	cfgMgr.OnChange(func(c *config.Config) {
		// Transport settings need a restart; only log level changes apply
		// live through the next startup. Surface that instead of silently
		// half-applying.
		logger.Info("config changed on disk, restart to apply transport settings")
	})
	if err := cfgMgr.Watch(); err != nil {
		logger.Warn("config watch unavailable", "err", err)
	}

	if ips, err := network.GetLocalIPs(); err == nil {
		logger.Info("agent ready",
			"name", cfg.Agent.Name,
			"version", version,
			"host", cfg.Network.HostAddr,
			"local_addrs", strings.Join(ips, ","))
	}

	if *noTray {
		waitForSignal(logger)
		close(done)
		return
	}

	t := tray.New("WInject", fmt.Sprintf("WInject agent %s", version))
	var pauseID int
	pauseID = t.AddMenuItem("Pause injection", func() {
		now := !paused.Load()
		paused.Store(now)
		t.SetItemChecked(pauseID, now)
		logger.Info("injection toggled", "paused", now)
	})
	t.AddSeparator()
	t.AddMenuItem("Quit", func() { t.Stop() })

	// Blocks until Quit; systray must run on the main goroutine.
	t.Run()
	close(done)
	logger.Info("agent stopped")
}

func waitForSignal(logger *slog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", "signal", sig.String())
}

// keepAwakeLoop nudges the system periodically so the controlled machine
// does not sleep while the agent is running.
func keepAwakeLoop(done <-chan struct{}) {
	ticker := time.NewTicker(4 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			osutils.WakeUp()
		case <-done:
			return
		}
	}
}
