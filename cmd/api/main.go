// Package main is the entry point for the Adventure Checklist API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkordes/adventure-checklist/internal/app"
	"github.com/pkordes/adventure-checklist/internal/config"
)

func main() {
	os.Exit(run())
}

// run starts the server and blocks until it stops. It returns the process
// exit code so deferred cleanup runs before main exits.
func run() int {
	// --- Config -----------------------------------------------------------
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Error("configuration error", "error", err)
		return 1
	}
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before ours is configured.
		slog.Error("configuration error", "error", err)
		return 1
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Store ------------------------------------------------------------
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := app.OpenStore(ctx, cfg, logger)
	cancel()
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	// --- Router -----------------------------------------------------------
	services := app.NewServices(store, logger)
	photos := app.NewPhotoService(cfg, logger)
	if cfg.UnsplashAccessKey == "" {
		slog.Warn("UNSPLASH_ACCESS_KEY not set; destination photos use the placeholder")
	}
	router := app.NewRouter(cfg, services, photos, logger)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout covers the photo lookup on a cold cache.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-stop:
	case err := <-serveErr:
		slog.Error("server error", "error", err)
		return 1
	}
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		return 1
	}
	slog.Info("server stopped")
	return 0
}
