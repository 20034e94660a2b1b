package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/news-api/internal/apperr"
)

// User represents a row in the users table. Users are read-only through the API.
type User struct {
	Username  string `db:"username"`
	Name      string `db:"name"`
	AvatarURL string `db:"avatar_url"`
}

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// List returns all users ordered by username.
func (s *UserStore) List(ctx context.Context) ([]*User, error) {
	users := []*User{}
	err := s.db.SelectContext(ctx, &users, `SELECT username, name, avatar_url FROM users ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetByUsername returns the user, or apperr.UserNotFound.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, s.db.Rebind(`SELECT username, name, avatar_url FROM users WHERE username = ?`), username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.UserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return &u, nil
}

// Exists reports whether username names a user.
func (s *UserStore) Exists(ctx context.Context, username string) (bool, error) {
	ok, err := exists(ctx, s.db, `SELECT 1 FROM users WHERE username = ?`, username)
	if err != nil {
		return false, fmt.Errorf("check user %q: %w", username, err)
	}
	return ok, nil
}
