// Package main is the entry point for the Stanmoor Heritage Project site
// server. It loads configuration, connects to services, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stanmoor/internal/cache"
	"stanmoor/internal/cms"
	"stanmoor/internal/config"
	"stanmoor/internal/content"
	"stanmoor/internal/handlers"
	"stanmoor/internal/render"
	"stanmoor/internal/router"
)

func main() {
	// Structured logger; debug level so cache hits are visible in dev.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables. Missing required
	// values fail here, before anything is served.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"dataset", cfg.SanityDataset,
		"revalidate", cfg.RevalidateTTL.String(),
	)

	// Connect to Valkey for the full-page cache.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	pageCache := cache.NewPageCache(valkeyClient, cfg.RevalidateTTL)

	// CMS client and the typed content accessors over it.
	cmsClient := cms.New(cfg.SanityProjectID, cfg.SanityDataset, cfg.SanityAPIVersion, cfg.SanityReadToken)
	store := content.NewStore(cmsClient)

	// Template renderer for the public pages.
	renderer, err := render.New(cmsClient, cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	publicHandlers := handlers.NewPublic(store, pageCache, renderer, cfg.ContactEndpointURL)

	r := router.New(publicHandlers)

	// The server never waits on anything slower than a CMS round trip,
	// so the timeouts stay tight.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
