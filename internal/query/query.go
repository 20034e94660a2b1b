// Package query validates the filter, sort and pagination parameters accepted
// by the article and comment listing endpoints.
//
// Checks run in a fixed order and the first failure wins: unrecognised keys,
// then malformed limit/p values, then sortBy/order outside the allow-lists.
// Topic existence and page range need the database and are checked by the
// store once a descriptor has been produced here.
package query

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/joestump/news-api/internal/apperr"
)

const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// SortColumns is the allow-list for the article listing's sortBy parameter.
var SortColumns = []string{
	"article_id",
	"title",
	"topic",
	"author",
	"body",
	"created_at",
	"votes",
	"comment_count",
}

var (
	articleKeys = map[string]bool{"sortBy": true, "order": true, "topic": true, "limit": true, "p": true}
	commentKeys = map[string]bool{"limit": true, "p": true}
)

// Defaults holds the fallbacks applied when a parameter is omitted.
// MaxLimit caps the page size when positive; zero disables the cap.
type Defaults struct {
	SortBy   string
	Order    string
	Limit    int
	MaxLimit int
}

// StandardDefaults sorts newest first, ten rows per page.
var StandardDefaults = Defaults{
	SortBy: "created_at",
	Order:  OrderDesc,
	Limit:  10,
}

// Page is a resolved offset/limit window.
type Page struct {
	Limit  int
	Offset int64
	// Requested is true when the caller supplied p explicitly.
	Requested bool
}

// PastEnd reports whether an explicitly requested page starts beyond the
// last matching row. rows is the number of rows the window returned. The
// first page is never past the end, even when nothing matches.
func (p Page) PastEnd(rows int) bool {
	return p.Requested && p.Offset > 0 && rows == 0
}

// ArticleQuery is the normalised descriptor for GET /api/articles.
// Topic is only meaningful when FilterTopic is set; an empty topic= still
// filters (and fails the existence check).
type ArticleQuery struct {
	SortBy      string
	Order       string
	Topic       string
	FilterTopic bool
	Page
}

// CommentQuery is the normalised descriptor for GET /api/articles/{id}/comments.
type CommentQuery struct {
	Page
}

// Validator turns raw query strings into descriptors.
type Validator struct {
	defaults Defaults
}

// NewValidator checks d and returns a Validator that applies it.
func NewValidator(d Defaults) (*Validator, error) {
	if !IsSortColumn(d.SortBy) {
		return nil, fmt.Errorf("default sort column %q is not sortable", d.SortBy)
	}
	order, ok := normaliseOrder(d.Order)
	if !ok {
		return nil, fmt.Errorf("default order %q must be ASC or DESC", d.Order)
	}
	d.Order = order
	if d.Limit < 1 {
		return nil, fmt.Errorf("default limit must be positive, got %d", d.Limit)
	}
	if d.MaxLimit < 0 {
		return nil, fmt.Errorf("max limit must not be negative, got %d", d.MaxLimit)
	}
	if d.MaxLimit > 0 && d.Limit > d.MaxLimit {
		d.Limit = d.MaxLimit
	}
	return &Validator{defaults: d}, nil
}

// Defaults returns the normalised defaults in use.
func (v *Validator) Defaults() Defaults { return v.defaults }

// Articles validates the article listing parameters.
func (v *Validator) Articles(values url.Values) (ArticleQuery, error) {
	if err := checkKeys(values, articleKeys); err != nil {
		return ArticleQuery{}, err
	}
	page, err := v.page(values)
	if err != nil {
		return ArticleQuery{}, err
	}

	q := ArticleQuery{SortBy: v.defaults.SortBy, Order: v.defaults.Order, Page: page}
	if values.Has("sortBy") {
		q.SortBy = values.Get("sortBy")
		if !IsSortColumn(q.SortBy) {
			return ArticleQuery{}, apperr.InvalidSortOrder
		}
	}
	if values.Has("order") {
		order, ok := normaliseOrder(values.Get("order"))
		if !ok {
			return ArticleQuery{}, apperr.InvalidSortOrder
		}
		q.Order = order
	}
	if values.Has("topic") {
		q.Topic = values.Get("topic")
		q.FilterTopic = true
	}
	return q, nil
}

// Comments validates the comment listing parameters.
func (v *Validator) Comments(values url.Values) (CommentQuery, error) {
	if err := checkKeys(values, commentKeys); err != nil {
		return CommentQuery{}, err
	}
	page, err := v.page(values)
	if err != nil {
		return CommentQuery{}, err
	}
	return CommentQuery{Page: page}, nil
}

func (v *Validator) page(values url.Values) (Page, error) {
	p := Page{Limit: v.defaults.Limit}

	if values.Has("limit") {
		limit, ok := positiveInt(values.Get("limit"))
		if !ok {
			return Page{}, apperr.InvalidQuery
		}
		p.Limit = limit
	}
	if v.defaults.MaxLimit > 0 && p.Limit > v.defaults.MaxLimit {
		p.Limit = v.defaults.MaxLimit
	}

	if values.Has("p") {
		n, ok := positiveInt(values.Get("p"))
		if !ok {
			return Page{}, apperr.InvalidQuery
		}
		p.Requested = true
		p.Offset = offset(n, p.Limit)
	}
	return p, nil
}

// offset computes (page-1)*limit, saturating instead of overflowing.
func offset(page, limit int) int64 {
	skip := int64(page - 1)
	if skip > math.MaxInt64/int64(limit) {
		return math.MaxInt64
	}
	return skip * int64(limit)
}

func checkKeys(values url.Values, allowed map[string]bool) error {
	for k := range values {
		if !allowed[k] {
			return apperr.InvalidQuery
		}
	}
	return nil
}

func positiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func normaliseOrder(s string) (string, bool) {
	switch strings.ToUpper(s) {
	case OrderAsc:
		return OrderAsc, true
	case OrderDesc:
		return OrderDesc, true
	default:
		return "", false
	}
}

// IsSortColumn reports whether col is in SortColumns.
func IsSortColumn(col string) bool {
	for _, c := range SortColumns {
		if c == col {
			return true
		}
	}
	return false
}
