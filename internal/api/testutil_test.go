package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/news-api/internal/api"
	"github.com/joestump/news-api/internal/query"
	"github.com/joestump/news-api/internal/store"
	"github.com/joestump/news-api/internal/testutil"
)

// testEnv holds the router and stores for API integration tests.
type testEnv struct {
	Router   chi.Router
	Topics   *store.TopicStore
	Users    *store.UserStore
	Articles *store.ArticleStore
	Comments *store.CommentStore
}

// newTestEnv creates an in-memory SQLite database loaded with the
// development fixtures and wires up the full router with real stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewSeededDB(t)

	v, err := query.NewValidator(query.StandardDefaults)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	topics := store.NewTopicStore(db)
	users := store.NewUserStore(db)
	articles := store.NewArticleStore(db, topics, users)
	comments := store.NewCommentStore(db, articles, users)

	router := api.NewRouter(api.Deps{
		Topics:    topics,
		Users:     users,
		Articles:  articles,
		Comments:  comments,
		Validator: v,
	})
	return &testEnv{
		Router:   router,
		Topics:   topics,
		Users:    users,
		Articles: articles,
		Comments: comments,
	}
}

// do sends a request with an optional JSON body through the router.
func (env *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// decode fails the test unless rec has the wanted status, then decodes the body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, v any) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, wantStatus, rec.Body.String())
	}
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

// expectMsg asserts an error response's status and msg.
func expectMsg(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()
	var resp api.ErrorResponse
	decode(t, rec, wantStatus, &resp)
	if resp.Msg != wantMsg {
		t.Errorf("msg = %q, want %q", resp.Msg, wantMsg)
	}
}
