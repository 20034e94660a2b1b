package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/joestump/news-api/internal/apperr"
	"github.com/joestump/news-api/internal/query"
	"github.com/joestump/news-api/internal/store"
)

type articlesAPIHandler struct {
	articles  *store.ArticleStore
	comments  *store.CommentStore
	validator *query.Validator
}

// registerArticleRoutes registers article routes, including an article's
// comment collection, on r.
func registerArticleRoutes(r chi.Router, articles *store.ArticleStore, comments *store.CommentStore, v *query.Validator) {
	h := &articlesAPIHandler{articles: articles, comments: comments, validator: v}
	r.Get("/articles", h.List)
	r.Post("/articles", h.Create)
	r.Get("/articles/{article_id}", h.Get)
	r.Patch("/articles/{article_id}", h.Vote)
	r.Delete("/articles/{article_id}", h.Delete)
	r.Get("/articles/{article_id}/comments", h.ListComments)
	r.Post("/articles/{article_id}/comments", h.CreateComment)
}

// idParam parses an integer path parameter. Anything else is
// apperr.InvalidInput.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, apperr.InvalidInput
	}
	return id, nil
}

// List returns one page of articles.
// GET /api/articles?sortBy=&order=&topic=&limit=&p=
func (h *articlesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := h.validator.Articles(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := h.articles.List(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := ArticleListResponse{Articles: make([]ArticleResponse, 0, len(rows))}
	for _, row := range rows {
		resp.Articles = append(resp.Articles, articleRowToResponse(row))
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// Get returns one article with its comment_count.
// GET /api/articles/{article_id}
func (h *articlesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.articles.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, ArticleListResponse{Articles: []ArticleResponse{articleToResponse(a)}})
}

// Create adds an article.
// POST /api/articles
func (h *articlesAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateArticleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.articles.Create(r.Context(), store.NewArticle{
		Title:  *req.Title,
		Topic:  *req.Topic,
		Author: *req.Author,
		Body:   *req.Body,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, ArticleListResponse{Articles: []ArticleResponse{articleToResponse(a)}})
}

// Vote adds inc_votes to the article's votes.
// PATCH /api/articles/{article_id}
func (h *articlesAPIHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req VoteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.articles.IncrementVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, ArticleListResponse{Articles: []ArticleResponse{articleToResponse(a)}})
}

// Delete removes an article and its comments.
// DELETE /api/articles/{article_id}
func (h *articlesAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.articles.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

// ListComments returns one page of an article's comments, newest first.
// GET /api/articles/{article_id}/comments?limit=&p=
func (h *articlesAPIHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	q, err := h.validator.Comments(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := h.comments.ListByArticle(r.Context(), id, q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := CommentListResponse{Comments: make([]CommentResponse, 0, len(rows))}
	for _, row := range rows {
		resp.Comments = append(resp.Comments, commentRowToResponse(row))
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// CreateComment adds a comment to an article.
// POST /api/articles/{article_id}/comments
func (h *articlesAPIHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req CreateCommentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.comments.Create(r.Context(), id, *req.Username, *req.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, CommentListResponse{Comments: []CommentResponse{commentToResponse(c)}})
}
