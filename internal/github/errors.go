package github

import (
	"errors"
	"fmt"

	"github.com/cli/go-gh/v2/pkg/api"
)

// RequestError is returned when a hosting API call fails or answers with a
// non-success status.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: GitHub API error (status %d): %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// NotFoundError is returned when the repository has no open pull requests.
type NotFoundError struct {
	Repository string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no open pull requests found in %s", e.Repository)
}

// requestError converts a go-gh client error into a RequestError.
func requestError(op string, err error) error {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		return &RequestError{
			Op:         op,
			StatusCode: httpErr.StatusCode,
			Message:    httpErr.Message,
			Err:        err,
		}
	}
	return &RequestError{Op: op, Err: err}
}
