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

// Article is an articles row plus its derived comment_count.
type Article struct {
	ID           int64     `db:"article_id"`
	Title        string    `db:"title"`
	Topic        string    `db:"topic"`
	Author       string    `db:"author"`
	Body         string    `db:"body"`
	CreatedAt    time.Time `db:"created_at"`
	Votes        int       `db:"votes"`
	CommentCount int       `db:"comment_count"`
}

// ArticleRow is one row of a listing page. TotalCount is the number of
// articles matching the filter before pagination, repeated on every row.
type ArticleRow struct {
	Article
	TotalCount int `db:"total_count"`
}

// NewArticle is the payload for Create. Every field is required.
type NewArticle struct {
	Title  string
	Topic  string
	Author string
	Body   string
}

// articleSortExpr maps each sortable column to its SQL expression.
var articleSortExpr = map[string]string{
	"article_id":    "a.article_id",
	"title":         "a.title",
	"topic":         "a.topic",
	"author":        "a.author",
	"body":          "a.body",
	"created_at":    "a.created_at",
	"votes":         "a.votes",
	"comment_count": "comment_count",
}

const articleColumns = `a.article_id, a.title, a.topic, a.author, a.body, a.created_at, a.votes`

type ArticleStore struct {
	db     *sqlx.DB
	topics *TopicStore
	users  *UserStore
}

func NewArticleStore(db *sqlx.DB, topics *TopicStore, users *UserStore) *ArticleStore {
	return &ArticleStore{db: db, topics: topics, users: users}
}

// List returns one page of articles with comment and total counts.
//
// A topic filter naming no topic is rejected with apperr.TopicNotFound; an
// existing topic with no articles yields an empty page. An explicitly
// requested page past the last row is rejected with apperr.NotFound.
func (s *ArticleStore) List(ctx context.Context, q query.ArticleQuery) ([]*ArticleRow, error) {
	sortExpr, ok := articleSortExpr[q.SortBy]
	if !ok {
		return nil, apperr.InvalidSortOrder
	}
	dir := query.OrderDesc
	if q.Order == query.OrderAsc {
		dir = query.OrderAsc
	}

	var where string
	args := []any{}
	if q.FilterTopic {
		ok, err := s.topics.Exists(ctx, q.Topic)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.TopicNotFound
		}
		where = "WHERE a.topic = ?"
		args = append(args, q.Topic)
	}
	args = append(args, q.Limit, q.Offset)

	stmt := fmt.Sprintf(`
		SELECT %s,
		       COUNT(c.comment_id) AS comment_count,
		       COUNT(*) OVER () AS total_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		%s
		GROUP BY %s
		ORDER BY %s %s, a.article_id %s
		LIMIT ? OFFSET ?
	`, articleColumns, where, articleColumns, sortExpr, dir, dir)

	rows := []*ArticleRow{}
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(stmt), args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if q.PastEnd(len(rows)) {
		return nil, apperr.NotFound
	}
	return rows, nil
}

// GetByID returns the article with its comment_count, or apperr.ArticleNotFound.
func (s *ArticleStore) GetByID(ctx context.Context, id int64) (*Article, error) {
	var a Article
	err := s.db.GetContext(ctx, &a, s.db.Rebind(`
		SELECT `+articleColumns+`, COUNT(c.comment_id) AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = ?
		GROUP BY `+articleColumns), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return &a, nil
}

// Exists reports whether an article with id exists.
func (s *ArticleStore) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := exists(ctx, s.db, `SELECT 1 FROM articles WHERE article_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("check article %d: %w", id, err)
	}
	return ok, nil
}

// Create inserts an article with zero votes. Missing fields, an unknown
// author and an unknown topic are all rejected as apperr.InvalidInput.
func (s *ArticleStore) Create(ctx context.Context, in NewArticle) (*Article, error) {
	if in.Title == "" || in.Topic == "" || in.Author == "" || in.Body == "" {
		return nil, apperr.InvalidInput
	}
	ok, err := s.topics.Exists(ctx, in.Topic)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.InvalidInput
	}
	ok, err = s.users.Exists(ctx, in.Author)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.InvalidInput
	}

	id, err := db.InsertID(ctx, s.db, `
		INSERT INTO articles (title, topic, author, body, created_at, votes)
		VALUES (?, ?, ?, ?, ?, 0)`, "article_id",
		in.Title, in.Topic, in.Author, in.Body, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return s.GetByID(ctx, id)
}

// IncrementVotes adds delta (which may be negative) to the article's votes
// and returns the updated article.
func (s *ArticleStore) IncrementVotes(ctx context.Context, id int64, delta int) (*Article, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`UPDATE articles SET votes = votes + ? WHERE article_id = ?`), delta, id)
	if err != nil {
		return nil, fmt.Errorf("vote on article %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("vote on article %d: %w", id, err)
	}
	if n == 0 {
		return nil, apperr.ArticleNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes an article. Its comments go with it via ON DELETE CASCADE.
func (s *ArticleStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM articles WHERE article_id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete article %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete article %d: %w", id, err)
	}
	if n == 0 {
		return apperr.ArticleIDNotFound
	}
	return nil
}
