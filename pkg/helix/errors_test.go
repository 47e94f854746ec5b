package helix_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/streamkit-io/helix-client/pkg/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	apiErr := &helix.APIError{
		Error_:  "Not Found",
		Status:  404,
		Message: "channel not found",
	}

	assert.Equal(t, "Not Found: channel not found (status: 404)", apiErr.Error())
}

func TestHTTPError_ErrorWithBody(t *testing.T) {
	t.Parallel()

	httpErr := &helix.HTTPError{
		Route:  helix.NewRoute("GET", "channels", nil),
		Status: 404,
		Body: &helix.APIError{
			Error_:  "Not Found",
			Status:  404,
			Message: "channel not found",
		},
	}

	assert.Equal(t,
		"request GET[https://api.twitch.tv/helix/channels] failed with status 404: channel not found",
		httpErr.Error())
	assert.Equal(t, "channel not found", httpErr.Message())
}

func TestHTTPError_ErrorWithRawBody(t *testing.T) {
	t.Parallel()

	httpErr := &helix.HTTPError{
		Route:   helix.NewRoute("GET", "streams", nil),
		Status:  502,
		RawBody: "Bad Gateway",
	}

	assert.Contains(t, httpErr.Error(), "status 502")
	assert.Equal(t, "Bad Gateway", httpErr.Message())
}

func TestContentTypeError_Error(t *testing.T) {
	t.Parallel()

	ctErr := &helix.ContentTypeError{
		Route:       helix.NewRoute("GET", "streams", nil),
		ContentType: "text/html",
	}

	assert.Contains(t, ctErr.Error(), `"text/html"`)
}

func TestStatusPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusNotFound, helix.IsNotFound},
		{http.StatusUnauthorized, helix.IsUnauthorized},
		{http.StatusForbidden, helix.IsForbidden},
		{http.StatusTooManyRequests, helix.IsRateLimited},
	}

	for _, tc := range tests {
		err := &helix.HTTPError{Status: tc.status}
		assert.True(t, tc.check(err))
	}

	// Predicates see through wrapping
	wrapped := fmt.Errorf("listing streams: %w", &helix.HTTPError{Status: http.StatusNotFound})
	assert.True(t, helix.IsNotFound(wrapped))

	// And reject unrelated errors
	assert.False(t, helix.IsNotFound(errors.New("network down")))
	assert.False(t, helix.IsRateLimited(&helix.HTTPError{Status: http.StatusNotFound}))
}

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	apiErr, err := helix.ParseAPIError([]byte(`{"error":"Unauthorized","status":401,"message":"invalid token"}`))
	require.NoError(t, err)
	assert.Equal(t, "Unauthorized", apiErr.Error_)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "invalid token", apiErr.Message)
}

func TestParseAPIError_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := helix.ParseAPIError([]byte("<html>nope</html>"))
	require.Error(t, err)
}
