package migrations

// article_id is store-assigned: AUTOINCREMENT on SQLite, SERIAL on PostgreSQL,
// AUTO_INCREMENT on MySQL. topic and author reference topics and users.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateArticles, downCreateArticles)
}

func upCreateArticles(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS articles (
    article_id SERIAL PRIMARY KEY,
    title      TEXT NOT NULL,
    topic      TEXT NOT NULL REFERENCES topics(slug),
    author     TEXT NOT NULL REFERENCES users(username),
    body       TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
    votes      INTEGER NOT NULL DEFAULT 0
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS articles (
    article_id INT AUTO_INCREMENT PRIMARY KEY,
    title      VARCHAR(512) NOT NULL,
    topic      VARCHAR(255) NOT NULL,
    author     VARCHAR(255) NOT NULL,
    body       TEXT NOT NULL,
    created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
    votes      INT NOT NULL DEFAULT 0,
    CONSTRAINT fk_articles_topic FOREIGN KEY (topic) REFERENCES topics(slug),
    CONSTRAINT fk_articles_author FOREIGN KEY (author) REFERENCES users(username)
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS articles (
    article_id INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL,
    topic      TEXT NOT NULL REFERENCES topics(slug),
    author     TEXT NOT NULL REFERENCES users(username),
    body       TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    votes      INTEGER NOT NULL DEFAULT 0
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX articles_topic_idx ON articles (topic)`)
	return err
}

func downCreateArticles(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS articles`)
	return err
}
