package commands

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
)

//go:embed schema.sql
var schemaSQL string

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the listings schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			db, err := connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if _, err := db.Pool.Exec(ctx, schemaSQL); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}

			log.Info("Schema applied", map[string]interface{}{
				"database": cfg.Database.Name,
			})
			fmt.Println("Schema applied.")
			return nil
		},
	}
}
