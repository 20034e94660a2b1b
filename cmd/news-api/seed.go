package main

import (
	"github.com/spf13/cobra"

	"github.com/joestump/news-api/internal/config"
	"github.com/joestump/news-api/internal/db"
	"github.com/joestump/news-api/internal/logging"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all rows with the development fixtures",
		Long:  "seed migrates the database, deletes every topic, user, article and comment, and loads the development data set in one transaction.",
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
			log := logger.Sugar()

			database, err := openMigrated(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			f := db.DevFixtures()
			if err := db.Seed(cmd.Context(), database, f); err != nil {
				return err
			}

			log.Infow("seeded",
				"topics", len(f.Topics),
				"users", len(f.Users),
				"articles", len(f.Articles),
				"comments", len(f.Comments),
			)
			return nil
		},
	}
}
