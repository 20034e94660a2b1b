package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/joestump/news-api/internal/apperr"
)

func TestCommentStore_ListByArticle_NewestFirst(t *testing.T) {
	s := newSeededStores(t)

	rows, err := s.Comments.ListByArticle(context.Background(), 1, commentQuery(t, "limit=20"))
	if err != nil {
		t.Fatalf("ListByArticle: %v", err)
	}
	want := []int64{5, 2, 18, 13, 7, 8, 6, 12, 3, 4, 9}
	if got := commentIDs(rows); !equalIDs(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
	for _, r := range rows {
		if r.ArticleID != 1 {
			t.Errorf("comment %d article_id = %d, want 1", r.ID, r.ArticleID)
		}
		if r.TotalCount != 11 {
			t.Errorf("comment %d total_count = %d, want 11", r.ID, r.TotalCount)
		}
	}
}

func TestCommentStore_ListByArticle_DefaultLimit(t *testing.T) {
	s := newSeededStores(t)

	rows, err := s.Comments.ListByArticle(context.Background(), 1, commentQuery(t, ""))
	if err != nil {
		t.Fatalf("ListByArticle: %v", err)
	}
	if len(rows) != 10 {
		t.Errorf("len = %d, want 10", len(rows))
	}
}

func TestCommentStore_ListByArticle_Pagination(t *testing.T) {
	s := newSeededStores(t)
	ctx := context.Background()

	rows, err := s.Comments.ListByArticle(ctx, 1, commentQuery(t, "limit=5&p=2"))
	if err != nil {
		t.Fatalf("p=2: %v", err)
	}
	if got, want := commentIDs(rows), []int64{8, 6, 12, 3, 4}; !equalIDs(got, want) {
		t.Errorf("page 2 ids = %v, want %v", got, want)
	}

	rows, err = s.Comments.ListByArticle(ctx, 1, commentQuery(t, "limit=5&p=3"))
	if err != nil {
		t.Fatalf("p=3: %v", err)
	}
	if got, want := commentIDs(rows), []int64{9}; !equalIDs(got, want) {
		t.Errorf("page 3 ids = %v, want %v", got, want)
	}

	_, err = s.Comments.ListByArticle(ctx, 1, commentQuery(t, "limit=5&p=4"))
	if !errors.Is(err, apperr.NotFound) {
		t.Errorf("p=4 = %v, want NotFound", err)
	}
}

func TestCommentStore_ListByArticle_NoComments(t *testing.T) {
	s := newSeededStores(t)

	rows, err := s.Comments.ListByArticle(context.Background(), 2, commentQuery(t, ""))
	if err != nil {
		t.Fatalf("ListByArticle: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len = %d, want 0", len(rows))
	}
}

func TestCommentStore_ListByArticle_MissingArticle(t *testing.T) {
	s := newSeededStores(t)

	_, err := s.Comments.ListByArticle(context.Background(), 999, commentQuery(t, ""))
	if !errors.Is(err, apperr.ArticleIDNotFound) {
		t.Errorf("ListByArticle(999) = %v, want ArticleIDNotFound", err)
	}
}

func TestCommentStore_Create(t *testing.T) {
	s := newSeededStores(t)
	ctx := context.Background()

	c, err := s.Comments.Create(ctx, 2, "lurker", "First!")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID != 19 || c.ArticleID != 2 || c.Author != "lurker" || c.Body != "First!" || c.Votes != 0 {
		t.Errorf("comment = %+v", c)
	}

	// The new comment is the newest on its article.
	rows, err := s.Comments.ListByArticle(ctx, 2, commentQuery(t, ""))
	if err != nil {
		t.Fatalf("ListByArticle: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != c.ID {
		t.Errorf("comments on article 2 = %v, want [%d]", commentIDs(rows), c.ID)
	}

	a, err := s.Articles.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if a.CommentCount != 1 {
		t.Errorf("comment_count = %d, want 1", a.CommentCount)
	}
}

func TestCommentStore_Create_Rejections(t *testing.T) {
	s := newSeededStores(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		articleID int64
		username  string
		body      string
		want      *apperr.Error
	}{
		{"missing body", 1, "lurker", "", apperr.InvalidInput},
		{"missing username", 1, "", "hi", apperr.InvalidInput},
		{"unknown user", 1, "nobody", "hi", apperr.InvalidInput},
		{"missing article", 999, "lurker", "hi", apperr.ArticleIDNotFound},
		// Field checks come before the article lookup.
		{"missing body on missing article", 999, "lurker", "", apperr.InvalidInput},
	}
	for _, tt := range tests {
		_, err := s.Comments.Create(ctx, tt.articleID, tt.username, tt.body)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Create = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestCommentStore_IncrementVotes(t *testing.T) {
	s := newSeededStores(t)
	ctx := context.Background()

	c, err := s.Comments.IncrementVotes(ctx, 1, -20)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if c.Votes != -4 {
		t.Errorf("votes = %d, want -4", c.Votes)
	}

	_, err = s.Comments.IncrementVotes(ctx, 999, 1)
	if !errors.Is(err, apperr.CommentIDNotFound) {
		t.Errorf("IncrementVotes(999) = %v, want CommentIDNotFound", err)
	}
}

func TestCommentStore_Delete(t *testing.T) {
	s := newSeededStores(t)
	ctx := context.Background()

	if err := s.Comments.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Comments.GetByID(ctx, 1); !errors.Is(err, apperr.CommentIDNotFound) {
		t.Errorf("GetByID after delete = %v, want CommentIDNotFound", err)
	}
	if err := s.Comments.Delete(ctx, 1); !errors.Is(err, apperr.CommentIDNotFound) {
		t.Errorf("second Delete = %v, want CommentIDNotFound", err)
	}
}
