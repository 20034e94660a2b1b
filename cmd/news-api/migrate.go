package main

import (
	"github.com/spf13/cobra"

	"github.com/joestump/news-api/internal/config"
	"github.com/joestump/news-api/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			database, err := openMigrated(cmd.Context(), cfg, logger.Sugar())
			if err != nil {
				return err
			}
			return database.Close()
		},
	}
}
