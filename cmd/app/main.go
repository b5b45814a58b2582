package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ngogiaquyen/coinshop/internal/cache"
	"github.com/ngogiaquyen/coinshop/internal/config"
	"github.com/ngogiaquyen/coinshop/internal/database"
	"github.com/ngogiaquyen/coinshop/internal/database/postgres"
	"github.com/ngogiaquyen/coinshop/internal/economy"
	"github.com/ngogiaquyen/coinshop/internal/handler"
	"github.com/ngogiaquyen/coinshop/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	handler.InitValidator()

	pool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(context.Background(), pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	catalogRepo := cache.NewCatalog(postgres.NewCatalogRepository(pool), cfg.CatalogCacheSize, cache.DefaultCatalogTTL)
	ledgerRepo := postgres.NewLedgerRepository(pool)

	economyService := economy.NewService(catalogRepo, ledgerRepo)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, economyService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server stopped unexpectedly", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
