package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/news-api/internal/store"
)

// usersAPIHandler provides REST handlers for user endpoints. Users are read-only.
type usersAPIHandler struct {
	users *store.UserStore
}

// registerUserRoutes registers user routes on r.
func registerUserRoutes(r chi.Router, users *store.UserStore) {
	h := &usersAPIHandler{users: users}
	r.Get("/users", h.List)
	r.Get("/users/{username}", h.Get)
}

// List returns every user.
// GET /api/users
func (h *usersAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, userToResponse(u))
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// Get returns one user.
// GET /api/users/{username}
func (h *usersAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, UserListResponse{Users: []UserResponse{userToResponse(u)}})
}
