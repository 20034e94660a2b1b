package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/news-api/internal/store"
)

type topicsAPIHandler struct {
	topics *store.TopicStore
}

// registerTopicRoutes registers topic routes on r.
func registerTopicRoutes(r chi.Router, topics *store.TopicStore) {
	h := &topicsAPIHandler{topics: topics}
	r.Get("/topics", h.List)
	r.Post("/topics", h.Create)
}

// List returns every topic.
// GET /api/topics
func (h *topicsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := TopicListResponse{Topics: make([]TopicResponse, 0, len(topics))}
	for _, t := range topics {
		resp.Topics = append(resp.Topics, topicToResponse(t))
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// Create adds a topic.
// POST /api/topics
func (h *topicsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTopicRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	t, err := h.topics.Create(r.Context(), *req.Slug, *req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, TopicListResponse{Topics: []TopicResponse{topicToResponse(t)}})
}
