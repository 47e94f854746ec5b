package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/streamkit-io/helix-client/internal/http"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// Static errors for err113 compliance.
var (
	ErrEmptyGamesQuery = errors.New("games query needs at least one ID, name, or IGDB ID")
)

// GamesClient implements helix.GamesClient.
type GamesClient struct {
	httpClient *http.Client
}

// NewGamesClient creates a new games client.
func NewGamesClient(httpClient *http.Client) *GamesClient {
	return &GamesClient{
		httpClient: httpClient,
	}
}

// Top implements helix.GamesClient.Top.
func (c *GamesClient) Top(opts *helix.PageOptions) *helix.Iterator[helix.Game] {
	params := applyFirst(helix.NewParams(), opts)

	route := helix.NewRoute("GET", "games/top", params)
	route.TokenFor = tokenKey(opts)

	return helix.NewIterator[helix.Game](c.httpClient, route, maxResults[helix.Game](opts)...)
}

// Get implements helix.GamesClient.Get.
func (c *GamesClient) Get(ctx context.Context, query helix.GamesQuery) ([]helix.Game, error) {
	if len(query.IDs) == 0 && len(query.Names) == 0 && len(query.IGDBIDs) == 0 {
		return nil, ErrEmptyGamesQuery
	}

	params := helix.NewParams()

	if len(query.IDs) > 0 {
		params.SetList("id", query.IDs...)
	}

	if len(query.Names) > 0 {
		params.SetList("name", query.Names...)
	}

	if len(query.IGDBIDs) > 0 {
		params.SetList("igdb_id", query.IGDBIDs...)
	}

	route := helix.NewRoute("GET", "games", params)

	var result helix.DataResponse[helix.Game]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting games: %w", err)
	}

	return result.Data, nil
}
