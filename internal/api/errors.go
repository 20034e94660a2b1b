package api

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/joestump/news-api/internal/apperr"
	"github.com/joestump/news-api/internal/logging"
	"github.com/joestump/news-api/internal/metrics"
	"github.com/joestump/news-api/internal/store"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// writeJSON writes v as JSON with the given HTTP status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// writeError translates err into a status and {"msg": ...} body.
//
// An *apperr.Error is sent as-is. A driver error caused by the client's
// input becomes 400 Invalid Input. Anything else is logged and becomes a
// bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logging.FromContext(r.Context())

	if e, ok := apperr.As(err); ok {
		metrics.StoreRejectionsTotal.WithLabelValues(metrics.KindDomain).Inc()
		log.Debugw("request rejected", "status", e.Status, "msg", e.Msg)
		writeJSON(w, r, e.Status, ErrorResponse{Msg: e.Msg})
		return
	}

	if store.IsInvalidInput(err) {
		metrics.StoreRejectionsTotal.WithLabelValues(metrics.KindConstraint).Inc()
		log.Debugw("store rejected input", "error", err)
		writeJSON(w, r, apperr.InvalidInput.Status, ErrorResponse{Msg: apperr.InvalidInput.Msg})
		return
	}

	metrics.StoreRejectionsTotal.WithLabelValues(metrics.KindUnexpected).Inc()
	log.Errorw("unhandled error", "error", err)
	writeJSON(w, r, apperr.Internal.Status, ErrorResponse{Msg: apperr.Internal.Msg})
}

// decodeBody decodes a JSON request body into v and runs its Bind check.
// A malformed body or a failed check is apperr.InvalidInput.
func decodeBody(r *http.Request, v render.Binder) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return apperr.InvalidInput
	}
	if err := v.Bind(r); err != nil {
		return err
	}
	return nil
}
