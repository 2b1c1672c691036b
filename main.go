package main

import (
	"context"
	_ "embed"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hardspace/autostart"
	"hardspace/config"
	"hardspace/inject"
	"hardspace/keyhook"
	"hardspace/tray"
)

//go:embed assets/icon.ico
var iconData []byte

func main() {
	// Setup logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	configPath, _ := config.ConfigPath()
	slog.Info("Configuration loaded", "path", configPath)

	// Reconfigure logging with the configured level and sink
	setupLogging(cfg)

	// Create agent
	hook := keyhook.New()
	injector := inject.NewInjector(inject.NewSystem(), cfg.Inject.Settle())
	agent := NewAgent(hook, injector)

	// Install the global keyboard hook; without it there is nothing to do
	if err := agent.Start(); err != nil {
		slog.Error("Failed to install keyboard hook", "error", err)
		os.Exit(1)
	}

	// Setup signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	t := tray.New(tray.Options{
		Enabled:    agent.Enabled,
		SetEnabled: agent.SetEnabled,
		Autostart:  autostart.New(),
		Icon:       iconData,
	})

	go func() {
		<-ctx.Done()
		t.Stop()
	}()

	// Serve the tray menu until Quit is chosen or a signal arrives
	t.Run()

	// Release the hook before the process goes away
	if err := agent.Close(); err != nil {
		slog.Warn("Failed to release keyboard hook", "error", err)
	}

	slog.Info("hardspace stopped")
}

func setupLogging(cfg *config.Config) {
	var out io.Writer = os.Stdout
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			slog.Warn("Failed to open log file, keeping stdout", "path", cfg.Log.File, "error", err)
		} else {
			out = f
		}
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)
}
