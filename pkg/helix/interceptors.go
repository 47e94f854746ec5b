package helix

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/streamkit-io/helix-client/internal/constants"
)

// Request is the mutable view of an outgoing request that interceptors see.
type Request struct {
	Method   string
	Path     string
	Headers  http.Header
	Body     []byte
	Metadata map[string]interface{}
}

// Response is the view of a completed exchange passed to response
// interceptors. Error carries the transport or API error, if any.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor runs before a request is sent. Returning an error
// aborts the request.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor runs after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain holds ordered request and response interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates an empty interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends a request interceptor.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor appends a response interceptor.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs the request interceptors in order,
// stopping at the first error.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, interceptor := range c.requestInterceptors {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs the response interceptors in order,
// stopping at the first error.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for _, interceptor := range c.responseInterceptors {
		if err := interceptor(ctx, req, resp); err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs outgoing requests at debug level.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs completed exchanges, including the
// remaining helix rate-limit budget when the header is present.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		}

		if remaining := resp.Headers.Get("Ratelimit-Remaining"); remaining != "" {
			fields["ratelimit_remaining"] = remaining
		}

		if resp.Error != nil {
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// RateLimitInterceptor throttles requests to the given per-second rate.
// Helix enforces a token bucket per Client-Id; staying under that ceiling
// locally avoids burning attempts on 429s. Tokens are refilled on demand
// from elapsed wall time, so no background goroutine is needed.
func RateLimitInterceptor(requestsPerSecond int) RequestInterceptor {
	var (
		mu         sync.Mutex
		tokens     = requestsPerSecond
		lastRefill = time.Now()
	)

	interval := time.Second / time.Duration(requestsPerSecond)

	return func(ctx context.Context, _ *Request) error {
		for {
			mu.Lock()

			now := time.Now()

			refilled := int(now.Sub(lastRefill) / interval)
			if refilled > 0 {
				tokens = min(tokens+refilled, requestsPerSecond)
				lastRefill = lastRefill.Add(time.Duration(refilled) * interval)
			}

			if tokens > 0 {
				tokens--
				mu.Unlock()

				return nil
			}

			wait := interval - now.Sub(lastRefill)
			mu.Unlock()

			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// AuthenticationInterceptor sets a Bearer token obtained from the provider.
func AuthenticationInterceptor(tokenProvider func(context.Context) (string, error)) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		token, err := tokenProvider(ctx)
		if err != nil {
			return fmt.Errorf("failed to get authentication token: %w", err)
		}

		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		req.Headers.Set("Authorization", "Bearer "+token)

		return nil
	}
}

// HeaderInterceptor sets fixed headers on every request.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// metadataStartTime keys the request start timestamp in Request.Metadata.
const metadataStartTime = "start_time"

// Metrics accumulates call statistics for one endpoint.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector aggregates per-endpoint metrics, keyed "METHOD path".
type MetricsCollector struct {
	mu       sync.Mutex
	metrics  map[string]*Metrics
	onChange func(endpoint string, metrics *Metrics)
}

// NewMetricsCollector creates an empty metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metrics),
	}
}

// SetOnChange registers a callback invoked after each recorded exchange.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics *Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns the metrics recorded for an endpoint, or nil.
func (m *MetricsCollector) GetMetrics(endpoint string) *Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.metrics[endpoint]
}

func (m *MetricsCollector) record(endpoint string, latency time.Duration, failed bool) {
	m.mu.Lock()

	metrics := m.metrics[endpoint]
	if metrics == nil {
		metrics = &Metrics{}
		m.metrics[endpoint] = metrics
	}

	metrics.TotalRequests++
	metrics.LastRequestTime = time.Now()

	if latency > 0 {
		metrics.TotalLatency += latency
		metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)
	}

	if failed {
		metrics.TotalErrors++
	}

	onChange := m.onChange

	m.mu.Unlock()

	if onChange != nil {
		onChange(endpoint, metrics)
	}
}

// MetricsRequestInterceptor stamps the request with its start time.
func MetricsRequestInterceptor(_ *MetricsCollector) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[metadataStartTime] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records the exchange into the collector.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		var latency time.Duration

		if started, ok := req.Metadata[metadataStartTime].(time.Time); ok {
			latency = time.Since(started)
		}

		failed := resp.Error != nil || resp.StatusCode >= http.StatusBadRequest

		collector.record(req.Method+" "+req.Path, latency, failed)

		return nil
	}
}

// CircuitBreakerConfig tunes the circuit breaker interceptors.
type CircuitBreakerConfig struct {
	Threshold        int           // consecutive failures before opening
	Timeout          time.Duration // open-state cool-off before probing
	SuccessThreshold int           // successes in half-open needed to close
}

type circuitState int

const (
	circuitClosed circuitState = iota
	circuitOpen
	circuitHalfOpen
)

// CircuitBreaker is a closed/open/half-open state machine shared by the
// request and response interceptors.
type CircuitBreaker struct {
	mu          sync.Mutex
	config      *CircuitBreakerConfig
	state       circuitState
	failures    int
	successes   int
	lastFailure time.Time
}

// NewCircuitBreaker creates a circuit breaker. A nil config gets defaults.
func NewCircuitBreaker(config *CircuitBreakerConfig) *CircuitBreaker {
	if config == nil {
		config = &CircuitBreakerConfig{
			Threshold:        constants.CircuitBreakerThreshold,
			Timeout:          constants.CircuitBreakerTimeout,
			SuccessThreshold: constants.CircuitBreakerSuccessThreshold,
		}
	}

	return &CircuitBreaker{config: config}
}

// allow reports whether a request may proceed, moving an expired open
// circuit to half-open.
func (b *CircuitBreaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != circuitOpen {
		return true
	}

	if time.Since(b.lastFailure) <= b.config.Timeout {
		return false
	}

	b.state = circuitHalfOpen
	b.successes = 0

	return true
}

// observe folds one exchange outcome into the state machine.
func (b *CircuitBreaker) observe(failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if failed {
		b.failures++
		b.lastFailure = time.Now()

		// Any failure while probing reopens immediately.
		if b.state == circuitHalfOpen || b.failures >= b.config.Threshold {
			b.state = circuitOpen
		}

		return
	}

	switch b.state {
	case circuitHalfOpen:
		b.successes++
		if b.successes >= b.config.SuccessThreshold {
			b.state = circuitClosed
			b.failures = 0
		}
	case circuitClosed:
		b.failures = 0
	case circuitOpen:
	}
}

// CircuitBreakerRequestInterceptor rejects requests while the circuit is open.
func CircuitBreakerRequestInterceptor(breaker *CircuitBreaker) RequestInterceptor {
	return func(_ context.Context, _ *Request) error {
		if !breaker.allow() {
			return ErrCircuitOpen
		}

		return nil
	}
}

// CircuitBreakerResponseInterceptor feeds exchange outcomes to the breaker.
// Transport errors and 5xx responses count as failures.
func CircuitBreakerResponseInterceptor(breaker *CircuitBreaker) ResponseInterceptor {
	return func(_ context.Context, _ *Request, resp *Response) error {
		breaker.observe(resp.Error != nil || resp.StatusCode >= http.StatusInternalServerError)

		return nil
	}
}
