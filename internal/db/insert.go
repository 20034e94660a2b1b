package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// InsertID executes an INSERT written with ? placeholders and returns the
// generated key. PostgreSQL does not report LastInsertId, so the statement is
// extended with RETURNING idColumn there.
func InsertID(ctx context.Context, ext sqlx.ExtContext, query, idColumn string, args ...any) (int64, error) {
	q := ext.Rebind(query)
	if ext.DriverName() == "postgres" {
		var id int64
		err := ext.QueryRowxContext(ctx, q+" RETURNING "+idColumn, args...).Scan(&id)
		return id, err
	}
	res, err := ext.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
