package client

import (
	"context"
	"fmt"
	"time"

	"github.com/streamkit-io/helix-client/internal/http"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// BitsClient implements helix.BitsClient.
type BitsClient struct {
	httpClient *http.Client
}

// NewBitsClient creates a new bits client.
func NewBitsClient(httpClient *http.Client) *BitsClient {
	return &BitsClient{
		httpClient: httpClient,
	}
}

// Cheermotes implements helix.BitsClient.Cheermotes. An empty broadcaster ID
// returns only the global set.
func (c *BitsClient) Cheermotes(ctx context.Context, broadcasterID string) ([]helix.Cheermote, error) {
	params := helix.NewParams()
	if broadcasterID != "" {
		params.Set("broadcaster_id", broadcasterID)
	}

	route := helix.NewRoute("GET", "bits/cheermotes", params)

	var result helix.DataResponse[helix.Cheermote]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting cheermotes: %w", err)
	}

	return result.Data, nil
}

// Leaderboard implements helix.BitsClient.Leaderboard. Requires a user token
// with the bits:read scope.
func (c *BitsClient) Leaderboard(ctx context.Context, opts *helix.BitsLeaderboardOptions) ([]helix.BitsLeaderboardEntry, error) {
	params := helix.NewParams()

	route := helix.NewRoute("GET", "bits/leaderboard", params)

	if opts != nil {
		if opts.Count > 0 {
			params.Set("count", opts.Count)
		}

		if opts.Period != "" {
			params.Set("period", opts.Period)
		}

		if opts.StartedAt != nil {
			params.Set("started_at", opts.StartedAt.Format(time.RFC3339))
		}

		if opts.UserID != "" {
			params.Set("user_id", opts.UserID)
		}

		route.TokenFor = opts.TokenFor
	}

	var result helix.DataResponse[helix.BitsLeaderboardEntry]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting bits leaderboard: %w", err)
	}

	return result.Data, nil
}

// ExtensionTransactions implements helix.BitsClient.ExtensionTransactions.
func (c *BitsClient) ExtensionTransactions(extensionID string, transactionIDs []string, opts *helix.PageOptions) *helix.Iterator[helix.ExtensionTransaction] {
	params := helix.NewParams().Set("extension_id", extensionID)

	if len(transactionIDs) > 0 {
		params.SetList("id", transactionIDs...)
	}

	route := helix.NewRoute("GET", "extensions/transactions", applyFirst(params, opts))
	route.TokenFor = tokenKey(opts)

	return helix.NewIterator[helix.ExtensionTransaction](c.httpClient, route, maxResults[helix.ExtensionTransaction](opts)...)
}
