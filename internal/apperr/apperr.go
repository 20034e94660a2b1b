// Package apperr defines the typed failure returned by validators and stores
// when a request must be answered with a specific HTTP status and message.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a client-facing failure. Status is the HTTP status code and Msg is
// written verbatim as the response body's "msg" field.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Msg)
}

// Is reports whether target carries the same status and message, so that
// errors.Is works against the predeclared values below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Msg == t.Msg
}

// New returns an Error with the given status and message.
func New(status int, msg string) *Error {
	return &Error{Status: status, Msg: msg}
}

// As extracts an *Error from anywhere in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

var (
	InvalidInput      = New(http.StatusBadRequest, "Invalid Input")
	InvalidQuery      = New(http.StatusBadRequest, "Bad Request: Invalid Query")
	InvalidSortOrder  = New(http.StatusBadRequest, "Bad Request: Invalid Order/Sortby Query")
	TopicNotFound     = New(http.StatusBadRequest, "Bad Request: Topic Does Not Exist")
	NotFound          = New(http.StatusNotFound, "Not Found")
	ArticleNotFound   = New(http.StatusNotFound, "No Article With That ID")
	ArticleIDNotFound = New(http.StatusNotFound, "article_id Not Found")
	CommentIDNotFound = New(http.StatusNotFound, "comment_id Not Found")
	UserNotFound      = New(http.StatusNotFound, "User Not Found")
	Internal          = New(http.StatusInternalServerError, "Internal Server Error")
)
