package client

import (
	"context"
	"fmt"

	"github.com/streamkit-io/helix-client/internal/http"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// ConduitsClient implements helix.ConduitsClient. Conduit operations always
// use the app access token.
type ConduitsClient struct {
	httpClient *http.Client
}

// NewConduitsClient creates a new conduits client.
func NewConduitsClient(httpClient *http.Client) *ConduitsClient {
	return &ConduitsClient{
		httpClient: httpClient,
	}
}

// List implements helix.ConduitsClient.List.
func (c *ConduitsClient) List(ctx context.Context) ([]helix.Conduit, error) {
	route := helix.NewRoute("GET", "eventsub/conduits", nil)

	var result helix.DataResponse[helix.Conduit]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("listing conduits: %w", err)
	}

	return result.Data, nil
}

// Create implements helix.ConduitsClient.Create.
func (c *ConduitsClient) Create(ctx context.Context, shardCount int) (*helix.Conduit, error) {
	route := helix.NewRoute("POST", "eventsub/conduits", nil)
	route.Body = map[string]int{"shard_count": shardCount}

	var result helix.DataResponse[helix.Conduit]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("creating conduit: %w", err)
	}

	return result.First(), nil
}

// Update implements helix.ConduitsClient.Update.
func (c *ConduitsClient) Update(ctx context.Context, conduitID string, shardCount int) (*helix.Conduit, error) {
	route := helix.NewRoute("PATCH", "eventsub/conduits", nil)
	route.Body = map[string]interface{}{
		"id":          conduitID,
		"shard_count": shardCount,
	}

	var result helix.DataResponse[helix.Conduit]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("updating conduit: %w", err)
	}

	return result.First(), nil
}

// Delete implements helix.ConduitsClient.Delete.
func (c *ConduitsClient) Delete(ctx context.Context, conduitID string) error {
	params := helix.NewParams().Set("id", conduitID)

	route := helix.NewRoute("DELETE", "eventsub/conduits", params)

	_, err := c.httpClient.Do(ctx, route)
	if err != nil {
		return fmt.Errorf("deleting conduit: %w", err)
	}

	return nil
}

// Shards implements helix.ConduitsClient.Shards.
func (c *ConduitsClient) Shards(conduitID, status string, opts *helix.PageOptions) *helix.Iterator[helix.ConduitShard] {
	params := helix.NewParams().Set("conduit_id", conduitID)

	if status != "" {
		params.Set("status", status)
	}

	route := helix.NewRoute("GET", "eventsub/conduits/shards", applyFirst(params, opts))

	return helix.NewIterator[helix.ConduitShard](c.httpClient, route, maxResults[helix.ConduitShard](opts)...)
}

// UpdateShards implements helix.ConduitsClient.UpdateShards. Returns the
// shards that were successfully updated.
func (c *ConduitsClient) UpdateShards(ctx context.Context, conduitID string, updates []helix.ConduitShardUpdate) ([]helix.ConduitShard, error) {
	route := helix.NewRoute("PATCH", "eventsub/conduits/shards", nil)
	route.Body = map[string]interface{}{
		"conduit_id": conduitID,
		"shards":     updates,
	}

	var result helix.DataResponse[helix.ConduitShard]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("updating conduit shards: %w", err)
	}

	return result.Data, nil
}
