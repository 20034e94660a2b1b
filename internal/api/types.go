package api

import (
	"net/http"
	"time"

	"github.com/joestump/news-api/internal/apperr"
	"github.com/joestump/news-api/internal/store"
)

// Every success body wraps its rows in a named array, even for a single row.

// --- Topic types ---

// CreateTopicRequest is the request body for POST /api/topics.
type CreateTopicRequest struct {
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

func (req *CreateTopicRequest) Bind(r *http.Request) error {
	if req.Slug == nil || req.Description == nil {
		return apperr.InvalidInput
	}
	return nil
}

type TopicResponse struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type TopicListResponse struct {
	Topics []TopicResponse `json:"topics"`
}

func topicToResponse(t *store.Topic) TopicResponse {
	return TopicResponse{Slug: t.Slug, Description: t.Description}
}

// --- User types ---

type UserResponse struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

func userToResponse(u *store.User) UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
}

// --- Article types ---

// CreateArticleRequest is the request body for POST /api/articles.
type CreateArticleRequest struct {
	Title  *string `json:"title"`
	Topic  *string `json:"topic"`
	Author *string `json:"author"`
	Body   *string `json:"body"`
}

func (req *CreateArticleRequest) Bind(r *http.Request) error {
	if req.Title == nil || req.Topic == nil || req.Author == nil || req.Body == nil {
		return apperr.InvalidInput
	}
	return nil
}

// VoteRequest is the request body for PATCH on an article or comment.
// inc_votes is required and may be negative.
type VoteRequest struct {
	IncVotes *int `json:"inc_votes"`
}

func (req *VoteRequest) Bind(r *http.Request) error {
	if req.IncVotes == nil {
		return apperr.InvalidInput
	}
	return nil
}

type ArticleResponse struct {
	ArticleID    int64     `json:"article_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
	TotalCount   *int      `json:"total_count,omitempty"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
}

func articleToResponse(a *store.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:    a.ID,
		Title:        a.Title,
		Topic:        a.Topic,
		Author:       a.Author,
		Body:         a.Body,
		CreatedAt:    a.CreatedAt.UTC(),
		Votes:        a.Votes,
		CommentCount: a.CommentCount,
	}
}

func articleRowToResponse(row *store.ArticleRow) ArticleResponse {
	resp := articleToResponse(&row.Article)
	total := row.TotalCount
	resp.TotalCount = &total
	return resp
}

// --- Comment types ---

// CreateCommentRequest is the request body for POST /api/articles/{article_id}/comments.
type CreateCommentRequest struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}

func (req *CreateCommentRequest) Bind(r *http.Request) error {
	if req.Username == nil || req.Body == nil {
		return apperr.InvalidInput
	}
	return nil
}

type CommentResponse struct {
	CommentID  int64     `json:"comment_id"`
	ArticleID  int64     `json:"article_id"`
	Author     string    `json:"author"`
	Body       string    `json:"body"`
	Votes      int       `json:"votes"`
	CreatedAt  time.Time `json:"created_at"`
	TotalCount *int      `json:"total_count,omitempty"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

func commentToResponse(c *store.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Body:      c.Body,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

func commentRowToResponse(row *store.CommentRow) CommentResponse {
	resp := commentToResponse(&row.Comment)
	total := row.TotalCount
	resp.TotalCount = &total
	return resp
}
