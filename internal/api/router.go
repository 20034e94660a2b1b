package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/joestump/news-api/docs/swagger"
	"github.com/joestump/news-api/internal/apperr"
	"github.com/joestump/news-api/internal/query"
	"github.com/joestump/news-api/internal/store"
)

// Deps holds all dependencies required to build the router.
type Deps struct {
	Topics    *store.TopicStore
	Users     *store.UserStore
	Articles  *store.ArticleStore
	Comments  *store.CommentStore
	Validator *query.Validator
	Logger    *zap.Logger
}

var corsOptions = cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
	AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
	ExposedHeaders: []string{requestIDHeader},
	MaxAge:         300,
}

// NewRouter returns the service's root handler: the JSON API under /api, its
// Swagger UI under /api/docs and prometheus metrics on /metrics. Every route
// allows cross-origin requests from any origin. Anything else answers 404
// {"msg":"Not Found"}.
func NewRouter(deps Deps) chi.Router {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(recoverer)
	r.Use(instrument)
	// Preflights are answered here, before routing can 404 them.
	r.Use(cors.Handler(corsOptions))
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/docs/*", httpSwagger.WrapHandler)
	r.Mount("/api", NewAPIRouter(deps))
	return r
}

// NewAPIRouter creates the chi sub-router mounted at /api.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/", listEndpoints)
	registerTopicRoutes(r, deps.Topics)
	registerUserRoutes(r, deps.Users)
	registerArticleRoutes(r, deps.Articles, deps.Comments, deps.Validator)
	registerCommentRoutes(r, deps.Comments)
	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, apperr.NotFound)
}
