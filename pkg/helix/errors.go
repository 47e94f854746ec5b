package helix

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents the JSON error body Twitch returns on failed requests.
type APIError struct {
	Error_  string `json:"error"   yaml:"error"`
	Status  int    `json:"status"  yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d)", e.Error_, e.Message, e.Status)
}

// HTTPError is raised when a request completes with status >= 400. It carries
// the route, the status code and the decoded response body: parsed into Body
// when the response declared a JSON content type, raw text in RawBody
// otherwise. This layer never retries a failed request.
type HTTPError struct {
	// Route describes the request that failed.
	Route Route
	// Status is the HTTP response code, e.g. 404 or 429.
	Status int
	// Body holds the parsed JSON error body, if the response was JSON.
	Body *APIError
	// RawBody holds the response text when it was not JSON.
	RawBody string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Body != nil {
		return fmt.Sprintf("request %s failed with status %d: %s", e.Route, e.Status, e.Body.Message)
	}

	return fmt.Sprintf("request %s failed with status %d: %s", e.Route, e.Status, e.RawBody)
}

// Message returns whatever detail Twitch supplied about the failure.
func (e *HTTPError) Message() string {
	if e.Body != nil {
		return e.Body.Message
	}

	return e.RawBody
}

// ContentTypeError is raised when strict JSON was required but the server
// declared a non-JSON content type. Distinct from HTTPError: the request
// itself succeeded.
type ContentTypeError struct {
	Route       Route
	ContentType string
}

// Error implements the error interface.
func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("request %s expected JSON data but received %q", e.Route, e.ContentType)
}

// Static errors that can be wrapped with context.
var (
	ErrNoMoreItems       = errors.New("no more items")
	ErrMissingData       = errors.New("expected \"data\" key not found in response")
	ErrConfigRequired    = errors.New("config is required")
	ErrClientIDRequired  = errors.New("client ID is required")
	ErrSessionClosed     = errors.New("session has been closed")
	ErrCacheDisabled     = errors.New("cache disabled")
	ErrCacheKeyNotFound  = errors.New("key not found in cache")
	ErrCacheEntryExpired = errors.New("cache entry expired")
	ErrCacheValueTooBig  = errors.New("cache value exceeds maximum size")
	ErrCircuitOpen       = errors.New("circuit breaker is open")
	ErrNoToken           = errors.New("no token available for identity")
)

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 from the API.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsRateLimited checks if the error is a 429 from the API.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, status int) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.Status == status
	}

	return false
}

// ParseAPIError parses a JSON error body from the API.
func ParseAPIError(data []byte) (*APIError, error) {
	var apiErr APIError

	err := json.Unmarshal(data, &apiErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal API error: %w", err)
	}

	return &apiErr, nil
}
