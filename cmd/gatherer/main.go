package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/stockfighter-data/internal/api"
	"github.com/rickgao/stockfighter-data/internal/config"
	"github.com/rickgao/stockfighter-data/internal/database"
	"github.com/rickgao/stockfighter-data/internal/poller"
	"github.com/rickgao/stockfighter-data/internal/registry"
	"github.com/rickgao/stockfighter-data/internal/version"
	"github.com/rickgao/stockfighter-data/internal/writer"
)

func main() {
	configPath := flag.String("config", "configs/gatherer.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting gatherer",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"api_url", cfg.API.BaseURL,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create API client
	apiClient := api.NewClient(
		cfg.API.BaseURL,
		cfg.API.APIKey,
		api.WithLogger(logger),
		api.WithTimeout(time.Duration(cfg.API.Timeout)),
	)

	// Check the API is up before committing to a full start.
	logger.Info("checking api heartbeat")
	if err := apiClient.Heartbeat(ctx); err != nil {
		logger.Error("api heartbeat failed", "error", err)
		os.Exit(1)
	}
	logger.Info("api heartbeat ok")

	// Create venue/stock registry
	reg := registry.New(registry.Config{
		SyncInterval: time.Duration(cfg.Registry.SyncInterval),
	}, apiClient, logger)

	// Start health server early so we can monitor startup
	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Health.Port),
		Handler: createHealthHandler(pool, reg),
	}

	go func() {
		logger.Info("starting health server", "port", cfg.Health.Port)
		if err := healthServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("health server error", "error", err)
		}
	}()

	// Start registry (blocking initial discovery)
	logger.Info("starting registry (initial discovery)...")
	if err := reg.Start(ctx); err != nil {
		logger.Error("failed to start registry", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		reg.Stop(shutdownCtx)
	}()

	// Start snapshot writer
	snapWriter := writer.NewSnapshotWriter(writer.Config{
		BatchSize:     cfg.Writer.BatchSize,
		FlushInterval: time.Duration(cfg.Writer.FlushInterval),
	}, pool, logger)

	if err := snapWriter.Start(ctx); err != nil {
		logger.Error("failed to start snapshot writer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		snapWriter.Stop(shutdownCtx)
	}()

	// Start orderbook poller
	obPoller := poller.New(poller.Config{
		Interval:    time.Duration(cfg.Poller.Interval),
		Concurrency: cfg.Poller.Concurrency,
		Timeout:     time.Duration(cfg.Poller.Timeout),
	}, apiClient, reg, snapWriter, logger)

	if err := obPoller.Start(ctx); err != nil {
		logger.Error("failed to start poller", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		obPoller.Stop(shutdownCtx)
	}()

	logger.Info("gatherer running",
		"instance_id", cfg.Instance.ID,
		"listings", len(reg.Listings()),
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Health.Port),
	)

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	// Graceful shutdown of health server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	healthServer.Shutdown(shutdownCtx)

	logger.Info("gatherer stopped")
}

// createHealthHandler creates the HTTP handler for health checks.
func createHealthHandler(pool *pgxpool.Pool, reg *registry.Registry) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string                 `json:"status"`
			Components map[string]interface{} `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]interface{}),
		}

		// Check database
		if err := pool.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["postgres"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["postgres"] = "connected"
		}

		// Check registry
		listings := reg.Listings()
		health.Components["registry"] = map[string]interface{}{
			"venues":       len(reg.Venues()),
			"listings":     len(listings),
			"last_sync_at": reg.LastSyncAt().Format(time.RFC3339),
		}
		if len(listings) == 0 {
			health.Status = "degraded"
		}

		w.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	return mux
}
