package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/browser"

	"siusscore/internal/config"
	"siusscore/internal/logging"
	"siusscore/internal/session"
	"siusscore/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"addr", cfg.Server.Addr(),
		"fields_path", cfg.Fields.Path,
		"session_ttl", cfg.Session.TTL,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Warn early when the fields reference is missing; uploads will fail
	// until it is in place.
	if _, err := os.Stat(cfg.Fields.Path); err != nil {
		slog.Warn("fields reference file not found; uploads will be rejected",
			"path", cfg.Fields.Path,
		)
	}

	sessions := session.NewStore(cfg.Session.TTL)
	server := web.NewServer(cfg, sessions)

	// The tool is a local desktop companion: open the UI once the listener
	// has had a moment to come up.
	if cfg.Browser.AutoOpen {
		go func() {
			time.Sleep(time.Second)
			url := fmt.Sprintf("http://%s/", cfg.Server.Addr())
			if err := browser.OpenURL(url); err != nil {
				slog.Warn("could not open browser", "url", url, "error", err)
			}
		}()
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
