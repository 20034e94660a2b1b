package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/joestump/news-api/internal/store"
)

// commentsAPIHandler serves /api/comments. Listing and creation live under
// the owning article; see articlesAPIHandler.
type commentsAPIHandler struct {
	comments *store.CommentStore
}

func registerCommentRoutes(r chi.Router, comments *store.CommentStore) {
	h := &commentsAPIHandler{comments: comments}
	r.Patch("/comments/{comment_id}", h.Vote)
	r.Delete("/comments/{comment_id}", h.Delete)
}

// Vote adds inc_votes to the comment's votes.
// PATCH /api/comments/{comment_id}
func (h *commentsAPIHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "comment_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req VoteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.comments.IncrementVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, CommentListResponse{Comments: []CommentResponse{commentToResponse(c)}})
}

// Delete removes a comment.
// DELETE /api/comments/{comment_id}
func (h *commentsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "comment_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	render.NoContent(w, r)
}
