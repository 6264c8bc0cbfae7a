package openalex

import (
	"errors"
	"fmt"
)

// Sentinel errors for the OpenAlex client. Callers match them with
// errors.Is after unwrapping.
var (
	ErrNotFound        = errors.New("work not found")
	ErrRateLimited     = errors.New("rate limited by OpenAlex")
	ErrNetworkError    = errors.New("network error")
	ErrInvalidResponse = errors.New("invalid response from OpenAlex")
)

// APIError carries the HTTP status and endpoint of a failed request.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("openalex: %s returned %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("openalex: %s returned %d", e.Endpoint, e.StatusCode)
}

// Unwrap maps the status code onto a sentinel so callers can branch
// without inspecting numbers.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == 404:
		return ErrNotFound
	case e.StatusCode == 429:
		return ErrRateLimited
	case e.StatusCode >= 500:
		return ErrNetworkError
	default:
		return ErrInvalidResponse
	}
}
