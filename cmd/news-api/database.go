package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/joestump/news-api/internal/config"
	"github.com/joestump/news-api/internal/db"
)

// openMigrated opens the configured database and brings its schema up to date.
func openMigrated(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*sqlx.DB, error) {
	database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}
	database.SetMaxOpenConns(cfg.DB.MaxOpenConns)

	version, err := db.Migrate(ctx, database, cfg.DB.Driver)
	if err != nil {
		_ = database.Close()
		return nil, err
	}
	log.Infow("schema migrated", "driver", cfg.DB.Driver, "version", version)
	return database, nil
}
