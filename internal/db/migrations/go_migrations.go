// Package migrations contains the dialect-aware Go migrations that create the
// topics, users, articles and comments tables. Column types and key syntax
// differ between SQLite, PostgreSQL and MySQL, so each migration switches on
// the dialect set by the parent db package.
package migrations

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect configures the SQL dialect for Go migrations.
// Must be called before goose.Up. Valid values: "sqlite3", "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}
