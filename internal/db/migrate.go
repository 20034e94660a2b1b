package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/joestump/news-api/internal/db/migrations"
)

//go:embed migrations
var Migrations embed.FS

// gooseDialects maps our driver names to goose dialect names.
var gooseDialects = map[string]string{
	"sqlite3":  "sqlite3",
	"postgres": "postgres",
	"mysql":    "mysql",
}

// Migrate applies every pending migration for driver and returns the
// resulting schema version. goose keeps package-level state, so calls must
// not overlap.
func Migrate(ctx context.Context, conn *sqlx.DB, driver string) (int64, error) {
	dialect, ok := gooseDialects[driver]
	if !ok {
		return 0, fmt.Errorf("unknown driver for goose dialect: %q", driver)
	}
	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("set goose dialect: %w", err)
	}
	migrations.SetDialect(driver)

	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return 0, fmt.Errorf("sub migrations fs: %w", err)
	}
	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)

	if err := goose.UpContext(ctx, conn.DB, "."); err != nil {
		return 0, fmt.Errorf("run migrations: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, conn.DB)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}
