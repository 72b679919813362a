// Package commands implements the vivendactl administration CLI: schema
// migration and development seed data for the listing store.
package commands

import (
	"context"
	"fmt"

	"github.com/jcanovas/vivenda/internal/config"
	"github.com/jcanovas/vivenda/internal/database"
	"github.com/jcanovas/vivenda/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log *logger.Logger
)

// Execute runs the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:          "vivendactl",
		Short:        "Administration tool for the Vivenda listing store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			log = logger.New(cfg.Server.Env)
			return nil
		},
	}

	root.AddCommand(migrateCmd(), seedCmd())
	return root.Execute()
}

// connect opens a database pool for a command run.
func connect(ctx context.Context) (*database.Database, error) {
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s:%s/%s: %w",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.Name, err)
	}
	return db, nil
}
