package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"buddypay/internal/sqlite"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations and exit",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	dbClient, err := sqlite.NewClient(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db client: %w", err)
	}
	defer dbClient.Close()

	if err = dbClient.Migrate(ctx); err != nil {
		return err
	}

	version, err := dbClient.Version(ctx)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Schema is up to date", "version", version, "database", cfg.Database.DatabasePath)
	return nil
}
