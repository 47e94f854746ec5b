package client

import (
	"time"

	"github.com/streamkit-io/helix-client/internal/http"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// ClipsClient implements helix.ClipsClient.
type ClipsClient struct {
	httpClient *http.Client
}

// NewClipsClient creates a new clips client.
func NewClipsClient(httpClient *http.Client) *ClipsClient {
	return &ClipsClient{
		httpClient: httpClient,
	}
}

// ListByBroadcaster implements helix.ClipsClient.ListByBroadcaster.
func (c *ClipsClient) ListByBroadcaster(broadcasterID string, opts *helix.ListClipsOptions) *helix.Iterator[helix.Clip] {
	params := helix.NewParams().Set("broadcaster_id", broadcasterID)

	return c.iterate(params, opts)
}

// ListByGame implements helix.ClipsClient.ListByGame.
func (c *ClipsClient) ListByGame(gameID string, opts *helix.ListClipsOptions) *helix.Iterator[helix.Clip] {
	params := helix.NewParams().Set("game_id", gameID)

	return c.iterate(params, opts)
}

// Get implements helix.ClipsClient.Get.
func (c *ClipsClient) Get(clipIDs []string, opts *helix.ListClipsOptions) *helix.Iterator[helix.Clip] {
	params := helix.NewParams().SetList("id", clipIDs...)

	return c.iterate(params, opts)
}

func (c *ClipsClient) iterate(params *helix.Params, opts *helix.ListClipsOptions) *helix.Iterator[helix.Clip] {
	var page *helix.PageOptions

	if opts != nil {
		page = &opts.PageOptions

		if opts.StartedAt != nil {
			params.Set("started_at", opts.StartedAt.Format(time.RFC3339))
		}

		if opts.EndedAt != nil {
			params.Set("ended_at", opts.EndedAt.Format(time.RFC3339))
		}

		if opts.IsFeatured != nil {
			params.Set("is_featured", *opts.IsFeatured)
		}
	}

	route := helix.NewRoute("GET", "clips", applyFirst(params, page))
	route.TokenFor = tokenKey(page)

	return helix.NewIterator[helix.Clip](c.httpClient, route, maxResults[helix.Clip](page)...)
}
