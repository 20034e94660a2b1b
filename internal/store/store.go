// Package store holds the sqlx-backed data accessors for topics, users,
// articles and comments. Handlers never query the database directly.
//
// Failures the client must see are returned as *apperr.Error values; driver
// errors are wrapped and left for the API layer to classify with
// IsInvalidInput.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// exists reports whether a SELECT 1 query written with ? placeholders returns a row.
func exists(ctx context.Context, db *sqlx.DB, query string, args ...any) (bool, error) {
	var one int
	err := db.GetContext(ctx, &one, db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
