package client

import (
	"context"
	"fmt"

	"github.com/streamkit-io/helix-client/internal/http"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// StreamsClient implements helix.StreamsClient.
type StreamsClient struct {
	httpClient *http.Client
}

// NewStreamsClient creates a new streams client.
func NewStreamsClient(httpClient *http.Client) *StreamsClient {
	return &StreamsClient{
		httpClient: httpClient,
	}
}

// List implements helix.StreamsClient.List.
func (c *StreamsClient) List(opts *helix.ListStreamsOptions) *helix.Iterator[helix.Stream] {
	params := helix.NewParams()

	var page *helix.PageOptions

	if opts != nil {
		page = &opts.PageOptions

		if len(opts.UserIDs) > 0 {
			params.SetList("user_id", opts.UserIDs...)
		}

		if len(opts.UserLogins) > 0 {
			params.SetList("user_login", opts.UserLogins...)
		}

		if len(opts.GameIDs) > 0 {
			params.SetList("game_id", opts.GameIDs...)
		}

		if opts.Type != "" {
			params.Set("type", opts.Type)
		}

		if len(opts.Languages) > 0 {
			params.SetList("language", opts.Languages...)
		}
	}

	route := helix.NewRoute("GET", "streams", applyFirst(params, page))
	route.TokenFor = tokenKey(page)

	return helix.NewIterator[helix.Stream](c.httpClient, route, maxResults[helix.Stream](page)...)
}

// FollowedStreams implements helix.StreamsClient.FollowedStreams. Requires a
// user token with the user:read:follows scope.
func (c *StreamsClient) FollowedStreams(userID string, opts *helix.PageOptions) *helix.Iterator[helix.Stream] {
	params := helix.NewParams().Set("user_id", userID)

	route := helix.NewRoute("GET", "streams/followed", applyFirst(params, opts))
	route.TokenFor = userTokenKey(userID, opts)

	return helix.NewIterator[helix.Stream](c.httpClient, route, maxResults[helix.Stream](opts)...)
}

// CreateMarker implements helix.StreamsClient.CreateMarker.
func (c *StreamsClient) CreateMarker(ctx context.Context, userID, description string) (*helix.StreamMarker, error) {
	body := map[string]string{"user_id": userID}
	if description != "" {
		body["description"] = description
	}

	route := helix.NewRoute("POST", "streams/markers", nil)
	route.Body = body
	route.TokenFor = userTokenKey(userID, nil)

	var result helix.DataResponse[helix.StreamMarker]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("creating stream marker: %w", err)
	}

	return result.First(), nil
}
