package providers

import (
	"context"
	"errors"
	"fmt"
)

// ReviewRequest contains the data sent to an LLM for review.
type ReviewRequest struct {
	Prompt      string
	Temperature float64
}

// ReviewResponse contains the raw response from an LLM.
type ReviewResponse struct {
	Content    string
	Model      string
	TokensUsed int
}

// Reviewer is the provider abstraction interface.
type Reviewer interface {
	Review(ctx context.Context, req ReviewRequest) (ReviewResponse, error)
	Name() string
}

// APIError is a non-success answer from the model service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return "authentication error: " + e.Body
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
}
