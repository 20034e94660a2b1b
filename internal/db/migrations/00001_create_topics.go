package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateTopics, downCreateTopics)
}

func upCreateTopics(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS topics (
    slug        VARCHAR(255) PRIMARY KEY,
    description TEXT NOT NULL
)`
	default: // sqlite3, postgres
		ddl = `CREATE TABLE IF NOT EXISTS topics (
    slug        TEXT PRIMARY KEY,
    description TEXT NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create topics table: %w", err)
	}
	return nil
}

func downCreateTopics(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS topics`)
	return err
}
