package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUsers, downCreateUsers)
}

func upCreateUsers(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS users (
    username   VARCHAR(255) PRIMARY KEY,
    name       VARCHAR(255) NOT NULL,
    avatar_url TEXT NOT NULL
)`
	default: // sqlite3, postgres
		ddl = `CREATE TABLE IF NOT EXISTS users (
    username   TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    avatar_url TEXT NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func downCreateUsers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS users`)
	return err
}
