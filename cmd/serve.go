package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"buddypay/internal/auth"
	"buddypay/internal/core"
	"buddypay/internal/http"
	"buddypay/internal/metrics"
	"buddypay/internal/sqlite"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Starting application")

	dbClient, err := sqlite.NewClient(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db client: %w", err)
	}
	defer dbClient.Close()

	if err = dbClient.Migrate(ctx); err != nil {
		return err
	}

	observer := metrics.New()
	tokens := auth.NewTokenIssuer(cfg.Auth)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	store := sqlite.NewStore(dbClient.DB())
	service := core.NewService(store, hasher, observer, logger)
	httpServer := http.NewServer(service, tokens, observer, logger, cfg.HTTP)

	if err = httpServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-stop

	logger.InfoContext(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err = httpServer.Stop(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "Error stopping HTTP server", "error", err)
	}

	logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}
