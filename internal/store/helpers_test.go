package store_test

import (
	"net/url"
	"testing"

	"github.com/joestump/news-api/internal/query"
	"github.com/joestump/news-api/internal/store"
	"github.com/joestump/news-api/internal/testutil"
)

type stores struct {
	Topics   *store.TopicStore
	Users    *store.UserStore
	Articles *store.ArticleStore
	Comments *store.CommentStore
}

func newSeededStores(t *testing.T) *stores {
	t.Helper()
	db := testutil.NewSeededDB(t)
	topics := store.NewTopicStore(db)
	users := store.NewUserStore(db)
	articles := store.NewArticleStore(db, topics, users)
	return &stores{
		Topics:   topics,
		Users:    users,
		Articles: articles,
		Comments: store.NewCommentStore(db, articles, users),
	}
}

func articleQuery(t *testing.T, raw string) query.ArticleQuery {
	t.Helper()
	v, err := query.NewValidator(query.StandardDefaults)
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	q, err := v.Articles(values)
	if err != nil {
		t.Fatalf("Articles(%q): %v", raw, err)
	}
	return q
}

func commentQuery(t *testing.T, raw string) query.CommentQuery {
	t.Helper()
	v, err := query.NewValidator(query.StandardDefaults)
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	q, err := v.Comments(values)
	if err != nil {
		t.Fatalf("Comments(%q): %v", raw, err)
	}
	return q
}

func articleIDs(rows []*store.ArticleRow) []int64 {
	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func commentIDs(rows []*store.CommentRow) []int64 {
	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
