package main

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"blogsphere/internal/config"
	"blogsphere/internal/pkg/logger"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate <up|down>",
		Short: "Apply or roll back database migrations",
		Example: heredoc.Doc(`
			$ blogsphere migrate up
			$ blogsphere migrate down
		`),
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{string(config.MigrateUp), string(config.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.New(cfg.LogLevel)

			db, err := config.NewPostgresDB(cfg)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer db.Close()

			direction := config.MigrateDirection(args[0])
			if err := config.RunMigrations(db, direction); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			log.Info(context.Background(), "migrations applied", "direction", direction)
			return nil
		},
	}

	return cmd
}
