// Package http implements the Helix request executor: a lazily initialized
// HTTP session that builds requests from routes, attaches authentication,
// and translates error responses into typed errors.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/streamkit-io/helix-client/internal/auth"
	"github.com/streamkit-io/helix-client/internal/constants"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// Client executes routes against the Helix and identity hosts. The underlying
// session is created on first use and can be discarded with Clear, after
// which the next request transparently recreates it.
type Client struct {
	clientID  string
	tokens    auth.TokenSource
	userAgent string

	baseURL   string
	idBaseURL string

	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration

	logger helix.Logger
	debug  bool

	interceptors *helix.InterceptorChain
	cache        *helix.CacheManager
	cachePolicy  *helix.CachingPolicy

	session *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger helix.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithBaseURL overrides the Helix API host. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/") + "/"
	}
}

// WithIDBaseURL overrides the identity host. Used by tests.
func WithIDBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.idBaseURL = strings.TrimSuffix(baseURL, "/") + "/"
	}
}

// WithRetryConfig enables transport-level retries for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithInterceptors installs an interceptor chain.
func WithInterceptors(chain *helix.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithCache enables GET response caching.
func WithCache(cache helix.Cache, options *helix.CacheOptions, policy *helix.CachingPolicy) Option {
	return func(c *Client) {
		c.cache = helix.NewCacheManager(cache, options)

		if policy == nil {
			policy = helix.DefaultCachingPolicy()
		}

		c.cachePolicy = policy
	}
}

// NewClient creates a request executor for the given application client ID.
// A nil token source sends requests without Authorization headers.
func NewClient(clientID string, tokens auth.TokenSource, opts ...Option) *Client {
	client := &Client{
		clientID:     clientID,
		tokens:       tokens,
		userAgent:    constants.DefaultUserAgent,
		baseURL:      constants.HelixBaseURL,
		idBaseURL:    constants.IDBaseURL,
		retryMax:     constants.DefaultRetryMax,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// getSession returns the HTTP session, creating it on first use.
func (c *Client) getSession() *http.Client {
	if c.session == nil {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = c.retryMax
		retryClient.RetryWaitMin = c.retryWaitMin
		retryClient.RetryWaitMax = c.retryWaitMax
		retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
		retryClient.Logger = nil

		c.session = retryClient.StandardClient()

		if c.debug && c.logger != nil {
			c.logger.Debug("HTTP session created", map[string]interface{}{
				"retry_max": c.retryMax,
			})
		}
	}

	return c.session
}

// Clear discards the current session. The next request creates a fresh one.
func (c *Client) Clear() {
	c.session = nil
}

// Close tears down the session, releasing idle connections.
func (c *Client) Close() error {
	if c.session != nil {
		c.session.CloseIdleConnections()
		c.session = nil
	}

	return nil
}

// url derives the request URL for a route against the configured hosts.
func (c *Client) url(route helix.Route) string {
	base := c.baseURL
	if route.UseIDHost {
		base = c.idBaseURL
	}

	return base + strings.Trim(route.Path, "/") + helix.QueryString(route, !route.UseIDHost)
}

// Do executes a route and returns the raw response. Non-2xx responses return
// both the response and a typed *helix.HTTPError.
func (c *Client) Do(ctx context.Context, route helix.Route) (*helix.Response, error) {
	requestURL := c.url(route)

	var (
		bodyBytes []byte
		err       error
	)

	if route.Body != nil {
		bodyBytes, err = json.Marshal(route.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	cacheKey := ""
	if c.cacheable(route) {
		cacheKey = c.cache.GetCacheKey(route.Method, requestURL, nil)

		if cached, cacheErr := c.cache.Get(ctx, cacheKey); cacheErr == nil {
			return &helix.Response{
				StatusCode: http.StatusOK,
				Headers:    http.Header{"Content-Type": []string{"application/json"}},
				Body:       cached,
			}, nil
		}
	}

	interceptReq := &helix.Request{
		Method:  route.Method,
		Path:    route.Path,
		Headers: make(http.Header),
		Body:    bodyBytes,
	}

	err = c.prepareHeaders(ctx, route, interceptReq.Headers, len(bodyBytes) > 0)
	if err != nil {
		return nil, err
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, fmt.Errorf("running request interceptors: %w", err)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": route.Method,
			"url":    requestURL,
		})
	}

	var bodyReader io.Reader
	if len(interceptReq.Body) > 0 {
		bodyReader = bytes.NewReader(interceptReq.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, route.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", route.String(), err)
	}

	httpReq.Header = interceptReq.Headers

	httpResp, err := c.getSession().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing %s: %w", route.String(), err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body for %s: %w", route.String(), err)
	}

	resp := &helix.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      route.Method,
			"url":         requestURL,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if cacheKey != "" && c.cachePolicy.ShouldCache(route.Method, route.Path, resp.StatusCode) {
			_ = c.cache.SetWithETag(ctx, cacheKey, respBody, httpResp.Header.Get("ETag"), 0)
		}

		c.runResponseInterceptors(ctx, interceptReq, resp)

		return resp, nil
	}

	httpErr := &helix.HTTPError{
		Route:   route,
		Status:  resp.StatusCode,
		RawBody: string(respBody),
	}

	if apiErr, parseErr := helix.ParseAPIError(respBody); parseErr == nil {
		httpErr.Body = apiErr
	}

	resp.Error = httpErr
	c.runResponseInterceptors(ctx, interceptReq, resp)

	return resp, httpErr
}

// prepareHeaders builds the standard header set for a route.
func (c *Client) prepareHeaders(ctx context.Context, route helix.Route, headers http.Header, hasBody bool) error {
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", c.userAgent)

	if c.clientID != "" {
		headers.Set("Client-Id", c.clientID)
	}

	if hasBody {
		headers.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx, route.TokenFor)
		if err != nil {
			return fmt.Errorf("resolving token for %s: %w", route.String(), err)
		}

		headers.Set("Authorization", "Bearer "+token)
	}

	for key, value := range route.Headers {
		headers.Set(key, value)
	}

	return nil
}

func (c *Client) cacheable(route helix.Route) bool {
	return c.cache != nil && c.cachePolicy != nil && route.Method == http.MethodGet &&
		c.cachePolicy.ShouldCache(route.Method, route.Path, http.StatusOK)
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *helix.Request, resp *helix.Response) {
	if c.interceptors == nil {
		return
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// JSON executes a route and decodes the response body into out. A 2xx
// response with a non-JSON content type fails with *helix.ContentTypeError.
func (c *Client) JSON(ctx context.Context, route helix.Route, out interface{}) error {
	resp, err := c.Do(ctx, route)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusNoContent || len(resp.Body) == 0 {
		return nil
	}

	contentType := resp.Headers.Get("Content-Type")
	if !strings.Contains(contentType, "json") {
		return &helix.ContentTypeError{Route: route, ContentType: contentType}
	}

	err = json.Unmarshal(resp.Body, out)
	if err != nil {
		return fmt.Errorf("decoding response for %s: %w", route.String(), err)
	}

	return nil
}

// RequestPage executes a route and decodes the paginated envelope. The
// paginator depends on this through the helix.PageRequester interface.
func (c *Client) RequestPage(ctx context.Context, route helix.Route) (*helix.PageResponse, error) {
	var page helix.PageResponse

	err := c.JSON(ctx, route, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}
