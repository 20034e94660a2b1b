package api_test

import (
	"net/http"
	"testing"

	"github.com/joestump/news-api/internal/api"
)

func TestComments_List(t *testing.T) {
	env := newTestEnv(t)

	var resp api.CommentListResponse
	decode(t, env.do(t, "GET", "/api/articles/1/comments", ""), http.StatusOK, &resp)

	if len(resp.Comments) != 10 {
		t.Fatalf("len(comments) = %d, want 10", len(resp.Comments))
	}
	if resp.Comments[0].CommentID != 5 {
		t.Errorf("first comment = %d, want 5 (newest)", resp.Comments[0].CommentID)
	}
	for i, c := range resp.Comments {
		if c.ArticleID != 1 {
			t.Errorf("comment %d article_id = %d, want 1", c.CommentID, c.ArticleID)
		}
		if c.TotalCount == nil || *c.TotalCount != 11 {
			t.Errorf("comment %d total_count = %v, want 11", c.CommentID, c.TotalCount)
		}
		if i > 0 && c.CreatedAt.After(resp.Comments[i-1].CreatedAt) {
			t.Errorf("comment %d is newer than its predecessor", c.CommentID)
		}
	}
}

func TestComments_List_Pagination(t *testing.T) {
	env := newTestEnv(t)

	var resp api.CommentListResponse
	decode(t, env.do(t, "GET", "/api/articles/1/comments?limit=5&p=3", ""), http.StatusOK, &resp)
	if len(resp.Comments) != 1 || resp.Comments[0].CommentID != 9 {
		t.Errorf("page 3 = %+v, want only comment 9", resp.Comments)
	}

	expectMsg(t, env.do(t, "GET", "/api/articles/1/comments?limit=5&p=4", ""), http.StatusNotFound, "Not Found")
}

func TestComments_List_Empty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/api/articles/2/comments", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "{\"comments\":[]}\n" {
		t.Errorf("body = %q, want an empty comments array", got)
	}
}

func TestComments_List_Errors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		path   string
		status int
		msg    string
	}{
		{"/api/articles/999/comments", http.StatusNotFound, "article_id Not Found"},
		{"/api/articles/abc/comments", http.StatusBadRequest, "Invalid Input"},
		{"/api/articles/1/comments?sortBy=votes", http.StatusBadRequest, "Bad Request: Invalid Query"},
		{"/api/articles/1/comments?limit=-2", http.StatusBadRequest, "Bad Request: Invalid Query"},
		{"/api/articles/1/comments?p=zero", http.StatusBadRequest, "Bad Request: Invalid Query"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			expectMsg(t, env.do(t, "GET", tt.path, ""), tt.status, tt.msg)
		})
	}
}

func TestComments_Create(t *testing.T) {
	env := newTestEnv(t)

	var resp api.CommentListResponse
	decode(t, env.do(t, "POST", "/api/articles/2/comments", `{"username":"lurker","body":"First!","votes":99}`), http.StatusCreated, &resp)

	if len(resp.Comments) != 1 {
		t.Fatalf("len(comments) = %d, want 1", len(resp.Comments))
	}
	c := resp.Comments[0]
	if c.CommentID != 19 || c.ArticleID != 2 || c.Author != "lurker" || c.Body != "First!" {
		t.Errorf("comment = %+v", c)
	}
	if c.Votes != 0 {
		t.Errorf("votes = %d, want 0", c.Votes)
	}

	var article api.ArticleListResponse
	decode(t, env.do(t, "GET", "/api/articles/2", ""), http.StatusOK, &article)
	if article.Articles[0].CommentCount != 1 {
		t.Errorf("comment_count = %d, want 1", article.Articles[0].CommentCount)
	}
}

func TestComments_Create_Errors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		msg    string
	}{
		{"missing username", "/api/articles/1/comments", `{"body":"hi"}`, http.StatusBadRequest, "Invalid Input"},
		{"missing body", "/api/articles/1/comments", `{"username":"lurker"}`, http.StatusBadRequest, "Invalid Input"},
		{"unknown user", "/api/articles/1/comments", `{"username":"nobody","body":"hi"}`, http.StatusBadRequest, "Invalid Input"},
		{"malformed json", "/api/articles/1/comments", `username=lurker`, http.StatusBadRequest, "Invalid Input"},
		{"bad article id", "/api/articles/abc/comments", `{"username":"lurker","body":"hi"}`, http.StatusBadRequest, "Invalid Input"},
		{"absent article", "/api/articles/999/comments", `{"username":"lurker","body":"hi"}`, http.StatusNotFound, "article_id Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectMsg(t, env.do(t, "POST", tt.path, tt.body), tt.status, tt.msg)
		})
	}
}

func TestComments_Vote(t *testing.T) {
	env := newTestEnv(t)

	var resp api.CommentListResponse
	decode(t, env.do(t, "PATCH", "/api/comments/1", `{"inc_votes":-20}`), http.StatusOK, &resp)
	if c := resp.Comments[0]; c.CommentID != 1 || c.Votes != -4 {
		t.Errorf("comment = %+v, want id 1 with -4 votes", c)
	}

	expectMsg(t, env.do(t, "PATCH", "/api/comments/1", `{"inc_votes":"up"}`), http.StatusBadRequest, "Invalid Input")
	expectMsg(t, env.do(t, "PATCH", "/api/comments/1", `{}`), http.StatusBadRequest, "Invalid Input")
	expectMsg(t, env.do(t, "PATCH", "/api/comments/abc", `{"inc_votes":1}`), http.StatusBadRequest, "Invalid Input")
	expectMsg(t, env.do(t, "PATCH", "/api/comments/999", `{"inc_votes":1}`), http.StatusNotFound, "comment_id Not Found")
}

func TestComments_Delete(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "DELETE", "/api/comments/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204; body: %s", rec.Code, rec.Body.String())
	}

	expectMsg(t, env.do(t, "DELETE", "/api/comments/1", ""), http.StatusNotFound, "comment_id Not Found")
	expectMsg(t, env.do(t, "DELETE", "/api/comments/abc", ""), http.StatusBadRequest, "Invalid Input")

	var resp api.CommentListResponse
	decode(t, env.do(t, "GET", "/api/articles/9/comments", ""), http.StatusOK, &resp)
	if len(resp.Comments) != 1 || resp.Comments[0].CommentID != 17 {
		t.Errorf("article 9 comments = %+v, want only comment 17", resp.Comments)
	}
}
