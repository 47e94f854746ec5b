package helix_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/streamkit-io/helix-client/pkg/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptorChain_ExecutesInOrder(t *testing.T) {
	t.Parallel()

	chain := helix.NewInterceptorChain()
	ctx := context.Background()

	var order []string

	chain.AddRequestInterceptor(func(_ context.Context, _ *helix.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(_ context.Context, _ *helix.Request) error {
		order = append(order, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(ctx, &helix.Request{Method: "GET", Path: "streams"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := helix.NewInterceptorChain()
	wantErr := errors.New("rejected")
	reached := false

	chain.AddRequestInterceptor(func(_ context.Context, _ *helix.Request) error {
		return wantErr
	})
	chain.AddRequestInterceptor(func(_ context.Context, _ *helix.Request) error {
		reached = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &helix.Request{})
	require.ErrorIs(t, err, wantErr)
	assert.False(t, reached)
}

func TestAuthenticationInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := helix.AuthenticationInterceptor(func(context.Context) (string, error) {
		return "abc123", nil
	})

	req := &helix.Request{Method: "GET", Path: "streams"}
	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", req.Headers.Get("Authorization"))
}

func TestAuthenticationInterceptor_ProviderError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("no token")
	interceptor := helix.AuthenticationInterceptor(func(context.Context) (string, error) {
		return "", wantErr
	})

	err := interceptor(context.Background(), &helix.Request{})
	require.ErrorIs(t, err, wantErr)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := helix.HeaderInterceptor(map[string]string{
		"X-Custom": "value",
	})

	req := &helix.Request{}
	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "value", req.Headers.Get("X-Custom"))
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	collector := helix.NewMetricsCollector()
	reqInterceptor := helix.MetricsRequestInterceptor(collector)
	respInterceptor := helix.MetricsResponseInterceptor(collector)
	ctx := context.Background()

	req := &helix.Request{Method: "GET", Path: "games/top"}
	require.NoError(t, reqInterceptor(ctx, req))
	require.NoError(t, respInterceptor(ctx, req, &helix.Response{StatusCode: http.StatusOK}))

	metrics := collector.GetMetrics("GET games/top")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(1), metrics.TotalRequests)
	assert.Equal(t, int64(0), metrics.TotalErrors)

	// Errors are counted
	require.NoError(t, reqInterceptor(ctx, req))
	require.NoError(t, respInterceptor(ctx, req, &helix.Response{StatusCode: http.StatusInternalServerError}))

	metrics = collector.GetMetrics("GET games/top")
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	breaker := helix.NewCircuitBreaker(&helix.CircuitBreakerConfig{
		Threshold:        2,
		Timeout:          time.Hour,
		SuccessThreshold: 1,
	})

	reqInterceptor := helix.CircuitBreakerRequestInterceptor(breaker)
	respInterceptor := helix.CircuitBreakerResponseInterceptor(breaker)
	ctx := context.Background()
	req := &helix.Request{Method: "GET", Path: "streams"}

	// Two failures open the circuit
	for i := 0; i < 2; i++ {
		require.NoError(t, reqInterceptor(ctx, req))
		require.NoError(t, respInterceptor(ctx, req, &helix.Response{StatusCode: http.StatusBadGateway}))
	}

	err := reqInterceptor(ctx, req)
	require.ErrorIs(t, err, helix.ErrCircuitOpen)
}

func TestCircuitBreaker_RecoversAfterTimeout(t *testing.T) {
	t.Parallel()

	breaker := helix.NewCircuitBreaker(&helix.CircuitBreakerConfig{
		Threshold:        1,
		Timeout:          time.Millisecond,
		SuccessThreshold: 1,
	})

	reqInterceptor := helix.CircuitBreakerRequestInterceptor(breaker)
	respInterceptor := helix.CircuitBreakerResponseInterceptor(breaker)
	ctx := context.Background()
	req := &helix.Request{Method: "GET", Path: "streams"}

	require.NoError(t, reqInterceptor(ctx, req))
	require.NoError(t, respInterceptor(ctx, req, &helix.Response{Error: errors.New("boom")}))

	require.ErrorIs(t, reqInterceptor(ctx, req), helix.ErrCircuitOpen)

	// After the timeout the breaker half-opens and a success closes it
	time.Sleep(5 * time.Millisecond)

	require.NoError(t, reqInterceptor(ctx, req))
	require.NoError(t, respInterceptor(ctx, req, &helix.Response{StatusCode: http.StatusOK}))
	require.NoError(t, reqInterceptor(ctx, req))
}
