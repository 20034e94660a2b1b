package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/news-api/internal/apperr"
	"github.com/joestump/news-api/internal/db"
	"github.com/joestump/news-api/internal/query"
)

// Comment represents a row in the comments table.
type Comment struct {
	ID        int64     `db:"comment_id"`
	ArticleID int64     `db:"article_id"`
	Author    string    `db:"author"`
	Body      string    `db:"body"`
	Votes     int       `db:"votes"`
	CreatedAt time.Time `db:"created_at"`
}

// CommentRow is one row of a listing page; see ArticleRow.TotalCount.
type CommentRow struct {
	Comment
	TotalCount int `db:"total_count"`
}

const commentColumns = `comment_id, article_id, author, body, votes, created_at`

type CommentStore struct {
	db       *sqlx.DB
	articles *ArticleStore
	users    *UserStore
}

func NewCommentStore(db *sqlx.DB, articles *ArticleStore, users *UserStore) *CommentStore {
	return &CommentStore{db: db, articles: articles, users: users}
}

// ListByArticle returns one page of an article's comments, newest first.
// An absent article is apperr.ArticleIDNotFound; an explicitly requested
// page past the last comment is apperr.NotFound.
func (s *CommentStore) ListByArticle(ctx context.Context, articleID int64, q query.CommentQuery) ([]*CommentRow, error) {
	ok, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ArticleIDNotFound
	}

	rows := []*CommentRow{}
	err = s.db.SelectContext(ctx, &rows, s.db.Rebind(`
		SELECT `+commentColumns+`, COUNT(*) OVER () AS total_count
		FROM comments
		WHERE article_id = ?
		ORDER BY created_at DESC, comment_id DESC
		LIMIT ? OFFSET ?`), articleID, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("list comments for article %d: %w", articleID, err)
	}
	if q.PastEnd(len(rows)) {
		return nil, apperr.NotFound
	}
	return rows, nil
}

// GetByID returns the comment, or apperr.CommentIDNotFound.
func (s *CommentStore) GetByID(ctx context.Context, id int64) (*Comment, error) {
	var c Comment
	err := s.db.GetContext(ctx, &c, s.db.Rebind(`SELECT `+commentColumns+` FROM comments WHERE comment_id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.CommentIDNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment %d: %w", id, err)
	}
	return &c, nil
}

// Create adds a comment with zero votes to an article. Missing username or
// body and unknown users are apperr.InvalidInput; an absent article is
// apperr.ArticleIDNotFound.
func (s *CommentStore) Create(ctx context.Context, articleID int64, username, body string) (*Comment, error) {
	if username == "" || body == "" {
		return nil, apperr.InvalidInput
	}
	ok, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ArticleIDNotFound
	}
	ok, err = s.users.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.InvalidInput
	}

	id, err := db.InsertID(ctx, s.db, `
		INSERT INTO comments (article_id, author, body, votes, created_at)
		VALUES (?, ?, ?, 0, ?)`, "comment_id",
		articleID, username, body, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("create comment on article %d: %w", articleID, err)
	}
	return s.GetByID(ctx, id)
}

// IncrementVotes adds delta (which may be negative) to the comment's votes.
func (s *CommentStore) IncrementVotes(ctx context.Context, id int64, delta int) (*Comment, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`UPDATE comments SET votes = votes + ? WHERE comment_id = ?`), delta, id)
	if err != nil {
		return nil, fmt.Errorf("vote on comment %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("vote on comment %d: %w", id, err)
	}
	if n == 0 {
		return nil, apperr.CommentIDNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a comment, or returns apperr.CommentIDNotFound.
func (s *CommentStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM comments WHERE comment_id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	if n == 0 {
		return apperr.CommentIDNotFound
	}
	return nil
}
