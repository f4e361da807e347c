// fleetd coordination daemon — serves the HTTP API and runs the dispatch
// scheduler, lock sweeper, and compaction loops over the shared event store.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fleettools/fleetd/pkg/api"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/core"
	"github.com/fleettools/fleetd/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("FLEET_CONFIG_DIR", "."),
		"Path to the directory containing fleet.yaml")
	flag.Parse()

	// Load .env from the config directory before anything reads the
	// environment.
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("No .env file loaded", "path", envPath, "error", err)
	}

	httpPort := getEnv("FLEET_HTTP_PORT", "8314")

	slog.Info("Starting fleetd",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	engine, err := core.New(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open coordination store", "error", err)
		os.Exit(1)
	}
	slog.Info("Store opened", "path", cfg.StorePath())

	// Surface missions interrupted by a previous shutdown or crash before
	// any new work starts; each has a checkpoint the operator can resume.
	for _, m := range engine.DetectInterrupted(ctx) {
		slog.Warn("Interrupted mission detected — resume with `fleetctl resume`",
			"mission_id", m.MissionID,
			"checkpoint_id", m.CheckpointID,
			"idle", m.IdleFor)
	}

	engine.StartBackground(ctx)

	httpServer := api.NewServer(cfg, engine.DB, engine.Store,
		engine.Missions, engine.Sorties, engine.Specialists, engine.Scheduler,
		engine.Locks, engine.Mail, engine.Checkpoints, engine.Planner)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Close stops the loops and checkpoints in-progress missions so the next
	// start can resume them.
	closeCtx, closeCancel := context.WithTimeout(ctx, 30*time.Second)
	defer closeCancel()
	if err := engine.Close(closeCtx); err != nil {
		slog.Error("Error closing coordination store", "error", err)
	}

	slog.Info("Shutdown complete")
}
