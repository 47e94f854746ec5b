package client

import (
	"github.com/streamkit-io/helix-client/internal/http"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// SearchClient implements helix.SearchClient.
type SearchClient struct {
	httpClient *http.Client
}

// NewSearchClient creates a new search client.
func NewSearchClient(httpClient *http.Client) *SearchClient {
	return &SearchClient{
		httpClient: httpClient,
	}
}

// Categories implements helix.SearchClient.Categories.
func (c *SearchClient) Categories(query string, opts *helix.PageOptions) *helix.Iterator[helix.Game] {
	params := applyFirst(helix.NewParams().Set("query", query), opts)

	route := helix.NewRoute("GET", "search/categories", params)
	route.TokenFor = tokenKey(opts)

	return helix.NewIterator[helix.Game](c.httpClient, route, maxResults[helix.Game](opts)...)
}

// Channels implements helix.SearchClient.Channels.
func (c *SearchClient) Channels(query string, opts *helix.SearchChannelsOptions) *helix.Iterator[helix.SearchChannel] {
	params := helix.NewParams().Set("query", query)

	var page *helix.PageOptions

	if opts != nil {
		page = &opts.PageOptions

		if opts.LiveOnly {
			params.Set("live_only", true)
		}
	}

	route := helix.NewRoute("GET", "search/channels", applyFirst(params, page))
	route.TokenFor = tokenKey(page)

	return helix.NewIterator[helix.SearchChannel](c.httpClient, route, maxResults[helix.SearchChannel](page)...)
}
