package api

import (
	"net/http"
	"time"

	"github.com/joestump/news-api/internal/build"
)

// Endpoint describes one route in the GET /api catalog.
type Endpoint struct {
	Description     string   `json:"description"`
	Queries         []string `json:"queries"`
	Body            any      `json:"exampleBody,omitempty"`
	ExampleResponse any      `json:"exampleResponse"`
}

// EndpointsResponse is the body of GET /api.
type EndpointsResponse struct {
	Version   string              `json:"version"`
	Endpoints map[string]Endpoint `json:"endpoints"`
}

var exampleTime = time.Date(2020, 11, 3, 9, 12, 0, 0, time.UTC)

var exampleArticle = ArticleResponse{
	ArticleID:    3,
	Title:        "Eight pug gifs that remind me of mitch",
	Topic:        "mitch",
	Author:       "icellusedkars",
	Body:         "some gifs",
	CreatedAt:    exampleTime,
	Votes:        0,
	CommentCount: 2,
}

var exampleComment = CommentResponse{
	CommentID: 10,
	ArticleID: 3,
	Author:    "icellusedkars",
	Body:      "git push origin master",
	Votes:     0,
	CreatedAt: time.Date(2020, 6, 20, 7, 24, 0, 0, time.UTC),
}

func articleWith(a ArticleResponse, votes, total int) ArticleResponse {
	a.Votes = votes
	if total > 0 {
		a.TotalCount = &total
	}
	return a
}

func commentWith(c CommentResponse, votes, total int) CommentResponse {
	c.Votes = votes
	if total > 0 {
		c.TotalCount = &total
	}
	return c
}

// Endpoints is the catalog served by GET /api. Keys are "METHOD path" with
// path parameters written as :name; every registered route has an entry.
var Endpoints = map[string]Endpoint{
	"GET /api": {
		Description:     "serves a json representation of all the available endpoints of the api",
		Queries:         []string{},
		ExampleResponse: map[string]any{"endpoints": "..."},
	},
	"GET /api/topics": {
		Description:     "serves an array of all topics",
		Queries:         []string{},
		ExampleResponse: TopicListResponse{Topics: []TopicResponse{{Slug: "football", Description: "Footie!"}}},
	},
	"POST /api/topics": {
		Description:     "adds a topic and serves it; slug and description are required strings and slug must be unused",
		Queries:         []string{},
		Body:            map[string]string{"slug": "coding", "description": "Code is love, code is life"},
		ExampleResponse: TopicListResponse{Topics: []TopicResponse{{Slug: "coding", Description: "Code is love, code is life"}}},
	},
	"GET /api/users": {
		Description: "serves an array of all users",
		Queries:     []string{},
		ExampleResponse: UserListResponse{Users: []UserResponse{{
			Username:  "butter_bridge",
			Name:      "jonny",
			AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
		}}},
	},
	"GET /api/users/:username": {
		Description: "serves the user with the given username",
		Queries:     []string{},
		ExampleResponse: UserListResponse{Users: []UserResponse{{
			Username:  "rogersop",
			Name:      "paul",
			AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4",
		}}},
	},
	"GET /api/articles": {
		Description: "serves a page of articles with comment_count and total_count; topic must name an existing topic, and a page past the end is 404",
		Queries:     []string{"topic", "sortBy", "order", "limit", "p"},
		ExampleResponse: ArticleListResponse{Articles: []ArticleResponse{
			articleWith(exampleArticle, 0, 13),
		}},
	},
	"POST /api/articles": {
		Description:     "adds an article and serves it; title, topic, author and body are required, and topic and author must exist",
		Queries:         []string{},
		Body:            map[string]string{"title": "Eight pug gifs that remind me of mitch", "topic": "mitch", "author": "icellusedkars", "body": "some gifs"},
		ExampleResponse: ArticleListResponse{Articles: []ArticleResponse{exampleArticle}},
	},
	"GET /api/articles/:article_id": {
		Description:     "serves the article with the given id, including comment_count",
		Queries:         []string{},
		ExampleResponse: ArticleListResponse{Articles: []ArticleResponse{exampleArticle}},
	},
	"PATCH /api/articles/:article_id": {
		Description:     "adds inc_votes (which may be negative) to the article's votes and serves the updated article",
		Queries:         []string{},
		Body:            map[string]int{"inc_votes": 1},
		ExampleResponse: ArticleListResponse{Articles: []ArticleResponse{articleWith(exampleArticle, 1, 0)}},
	},
	"DELETE /api/articles/:article_id": {
		Description:     "deletes the article and its comments; responds 204 with no body",
		Queries:         []string{},
		ExampleResponse: nil,
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves a page of the article's comments, newest first, with total_count",
		Queries:     []string{"limit", "p"},
		ExampleResponse: CommentListResponse{Comments: []CommentResponse{
			commentWith(exampleComment, 0, 2),
		}},
	},
	"POST /api/articles/:article_id/comments": {
		Description:     "adds a comment to the article and serves it; username must be an existing user and body is required",
		Queries:         []string{},
		Body:            map[string]string{"username": "icellusedkars", "body": "git push origin master"},
		ExampleResponse: CommentListResponse{Comments: []CommentResponse{exampleComment}},
	},
	"PATCH /api/comments/:comment_id": {
		Description:     "adds inc_votes (which may be negative) to the comment's votes and serves the updated comment",
		Queries:         []string{},
		Body:            map[string]int{"inc_votes": 1},
		ExampleResponse: CommentListResponse{Comments: []CommentResponse{commentWith(exampleComment, 1, 0)}},
	},
	"DELETE /api/comments/:comment_id": {
		Description:     "deletes the comment; responds 204 with no body",
		Queries:         []string{},
		ExampleResponse: nil,
	},
}

// listEndpoints serves the catalog.
// GET /api
func listEndpoints(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, EndpointsResponse{Version: build.Version, Endpoints: Endpoints})
}
