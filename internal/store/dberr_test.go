package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/joestump/news-api/internal/store"
	"github.com/joestump/news-api/internal/testutil"
)

func TestIsInvalidInput_SQLite(t *testing.T) {
	db := testutil.NewSeededDB(t)
	ctx := context.Background()

	tests := []struct {
		name string
		stmt string
		args []any
	}{
		{"foreign key", `INSERT INTO comments (article_id, author, body, votes, created_at) VALUES (?, ?, ?, 0, CURRENT_TIMESTAMP)`, []any{999, "lurker", "x"}},
		{"unique", `INSERT INTO topics (slug, description) VALUES (?, ?)`, []any{"cats", "again"}},
		{"not null", `INSERT INTO articles (title, topic, author, created_at, votes) VALUES (?, ?, ?, CURRENT_TIMESTAMP, 0)`, []any{"t", "cats", "lurker"}},
		{"unknown column", `SELECT nope FROM articles`, nil},
		{"syntax", `SELEC 1`, nil},
	}
	for _, tt := range tests {
		_, err := db.ExecContext(ctx, tt.stmt, tt.args...)
		if err == nil {
			t.Fatalf("%s: expected an error", tt.name)
		}
		if !store.IsInvalidInput(fmt.Errorf("wrapped: %w", err)) {
			t.Errorf("%s: IsInvalidInput(%v) = false, want true", tt.name, err)
		}
	}
}

func TestIsInvalidInput_Other(t *testing.T) {
	if store.IsInvalidInput(nil) {
		t.Error("IsInvalidInput(nil) = true")
	}
	if store.IsInvalidInput(errors.New("connection refused")) {
		t.Error("IsInvalidInput(plain error) = true")
	}
}
