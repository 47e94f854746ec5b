package helix

import (
	"context"
	"encoding/json"
	"time"
)

// Pagination carries the opaque continuation cursor Twitch attaches to
// paginated responses. An absent or empty cursor means the result set is
// exhausted.
type Pagination struct {
	Cursor string `json:"cursor,omitempty" yaml:"cursor,omitempty"`
}

// PageResponse is the raw envelope of one paginated response. Data is nil
// when the key was absent entirely, which the paginator treats as a protocol
// violation; an empty-but-present list decodes to a non-nil empty slice.
type PageResponse struct {
	Data       []json.RawMessage `json:"data"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Total      int               `json:"total,omitempty"`
}

// DataResponse is the envelope of a single-shot (non-iterated) Helix response.
type DataResponse[T any] struct {
	Data       []T         `json:"data"                 yaml:"data"`
	Total      int         `json:"total,omitempty"      yaml:"total,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// First returns the first element of Data, or nil when the response is empty.
func (r *DataResponse[T]) First() *T {
	if len(r.Data) == 0 {
		return nil
	}

	return &r.Data[0]
}

// PageRequester executes one route and decodes the paginated envelope. It is
// implemented by the internal HTTP client; the paginator only depends on this
// capability.
type PageRequester interface {
	RequestPage(ctx context.Context, route Route) (*PageResponse, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a helix.Client.
//
// ClientID is required on every configuration: Twitch rejects Helix requests
// without a Client-Id header. Tokens are selected per route via the route's
// TokenFor identity; AccessToken seeds the app (empty identity) token.
//
// Retry behavior is off by default and opt-in via RetryMax; when enabled it
// lives in the transport, not in the request/error translation layer.
type Config struct {
	// ClientID is the registered application client ID (required).
	ClientID string

	// AccessToken optionally seeds the app access token.
	AccessToken string

	// UserTokens optionally seeds per-identity user tokens, keyed by the
	// identity string used as Route.TokenFor.
	UserTokens map[string]string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// RetryMax is the maximum number of transport retries for transient
	// failures (>=500, 429, connection errors). 0 disables retrying.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// Cache optionally configures GET response caching.
	Cache *CacheConfig
}
