package migrations

// Deleting an article cascades to its comments at the store level.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateComments, downCreateComments)
}

func upCreateComments(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS comments (
    comment_id SERIAL PRIMARY KEY,
    article_id INTEGER NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
    author     TEXT NOT NULL REFERENCES users(username),
    body       TEXT NOT NULL,
    votes      INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS comments (
    comment_id INT AUTO_INCREMENT PRIMARY KEY,
    article_id INT NOT NULL,
    author     VARCHAR(255) NOT NULL,
    body       TEXT NOT NULL,
    votes      INT NOT NULL DEFAULT 0,
    created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
    CONSTRAINT fk_comments_article FOREIGN KEY (article_id) REFERENCES articles(article_id) ON DELETE CASCADE,
    CONSTRAINT fk_comments_author FOREIGN KEY (author) REFERENCES users(username)
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS comments (
    comment_id INTEGER PRIMARY KEY AUTOINCREMENT,
    article_id INTEGER NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
    author     TEXT NOT NULL REFERENCES users(username),
    body       TEXT NOT NULL,
    votes      INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create comments table: %w", err)
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX comments_article_idx ON comments (article_id)`)
	return err
}

func downCreateComments(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS comments`)
	return err
}
