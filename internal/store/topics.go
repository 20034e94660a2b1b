package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/news-api/internal/apperr"
)

// Topic represents a row in the topics table.
type Topic struct {
	Slug        string `db:"slug"`
	Description string `db:"description"`
}

// TopicStore reads and creates topics. Topics are never updated or deleted.
type TopicStore struct {
	db *sqlx.DB
}

func NewTopicStore(db *sqlx.DB) *TopicStore {
	return &TopicStore{db: db}
}

// List returns all topics ordered by slug.
func (s *TopicStore) List(ctx context.Context) ([]*Topic, error) {
	topics := []*Topic{}
	err := s.db.SelectContext(ctx, &topics, `SELECT slug, description FROM topics ORDER BY slug ASC`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// Exists reports whether a topic with slug exists.
func (s *TopicStore) Exists(ctx context.Context, slug string) (bool, error) {
	ok, err := exists(ctx, s.db, `SELECT 1 FROM topics WHERE slug = ?`, slug)
	if err != nil {
		return false, fmt.Errorf("check topic %q: %w", slug, err)
	}
	return ok, nil
}

// Create inserts a topic. Any string is accepted for either field; a
// duplicate slug is rejected as apperr.InvalidInput.
func (s *TopicStore) Create(ctx context.Context, slug, description string) (*Topic, error) {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`INSERT INTO topics (slug, description) VALUES (?, ?)`),
		slug, description)
	if err != nil {
		if IsInvalidInput(err) {
			return nil, apperr.InvalidInput
		}
		return nil, fmt.Errorf("create topic %q: %w", slug, err)
	}
	return &Topic{Slug: slug, Description: description}, nil
}
