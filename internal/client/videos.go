package client

import (
	"context"
	"fmt"

	"github.com/streamkit-io/helix-client/internal/http"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// VideosClient implements helix.VideosClient.
type VideosClient struct {
	httpClient *http.Client
}

// NewVideosClient creates a new videos client.
func NewVideosClient(httpClient *http.Client) *VideosClient {
	return &VideosClient{
		httpClient: httpClient,
	}
}

// ListByUser implements helix.VideosClient.ListByUser.
func (c *VideosClient) ListByUser(userID string, opts *helix.ListVideosOptions) *helix.Iterator[helix.Video] {
	params := helix.NewParams().Set("user_id", userID)

	return c.iterate(params, opts)
}

// ListByGame implements helix.VideosClient.ListByGame.
func (c *VideosClient) ListByGame(gameID string, opts *helix.ListVideosOptions) *helix.Iterator[helix.Video] {
	params := helix.NewParams().Set("game_id", gameID)

	return c.iterate(params, opts)
}

// Get implements helix.VideosClient.Get.
func (c *VideosClient) Get(videoIDs []string) *helix.Iterator[helix.Video] {
	params := helix.NewParams().SetList("id", videoIDs...)

	return c.iterate(params, nil)
}

// Delete implements helix.VideosClient.Delete. Returns the IDs that were
// actually deleted.
func (c *VideosClient) Delete(ctx context.Context, videoIDs []string) ([]string, error) {
	params := helix.NewParams().SetList("id", videoIDs...)

	route := helix.NewRoute("DELETE", "videos", params)

	var result helix.DataResponse[string]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("deleting videos: %w", err)
	}

	return result.Data, nil
}

func (c *VideosClient) iterate(params *helix.Params, opts *helix.ListVideosOptions) *helix.Iterator[helix.Video] {
	var page *helix.PageOptions

	if opts != nil {
		page = &opts.PageOptions

		if opts.Language != "" {
			params.Set("language", opts.Language)
		}

		if opts.Period != "" {
			params.Set("period", opts.Period)
		}

		if opts.Sort != "" {
			params.Set("sort", opts.Sort)
		}

		if opts.Type != "" {
			params.Set("type", opts.Type)
		}
	}

	route := helix.NewRoute("GET", "videos", applyFirst(params, page))
	route.TokenFor = tokenKey(page)

	return helix.NewIterator[helix.Video](c.httpClient, route, maxResults[helix.Video](page)...)
}
