// Package client implements the helix.Client interface: one shared request
// executor with resource-specific clients layered on top.
package client

import (
	"errors"
	"fmt"

	"github.com/streamkit-io/helix-client/internal/auth"
	"github.com/streamkit-io/helix-client/internal/http"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// Static errors for err113 compliance.
var (
	ErrClientIDRequired = errors.New("client ID is required")
)

// Client implements the helix.Client interface.
type Client struct {
	httpClient *http.Client
	tokens     *auth.TokenStore
	logger     helix.Logger

	// Resource clients
	streams  helix.StreamsClient
	games    helix.GamesClient
	clips    helix.ClipsClient
	videos   helix.VideosClient
	search   helix.SearchClient
	channels helix.ChannelsClient
	chat     helix.ChatClient
	bits     helix.BitsClient
	conduits helix.ConduitsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *helix.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Cache != nil {
		cache, err := helix.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache backend: %w", err)
		}

		httpOpts = append(httpOpts, http.WithCache(cache, config.Cache.Options, nil))
	}

	return httpOpts, nil
}

// New creates a new Helix API client.
func New(config *helix.Config) (*Client, error) {
	if config.ClientID == "" {
		return nil, ErrClientIDRequired
	}

	tokens := auth.NewTokenStore(config.AccessToken, config.UserTokens)

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.ClientID, tokens, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		tokens:     tokens,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithHTTPClient creates a client around an existing executor. Used by
// tests to point resource clients at a local server.
func NewWithHTTPClient(httpClient *http.Client) *Client {
	client := &Client{httpClient: httpClient}
	client.initializeResourceClients()

	return client
}

// initializeResourceClients creates all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.streams = NewStreamsClient(c.httpClient)
	c.games = NewGamesClient(c.httpClient)
	c.clips = NewClipsClient(c.httpClient)
	c.videos = NewVideosClient(c.httpClient)
	c.search = NewSearchClient(c.httpClient)
	c.channels = NewChannelsClient(c.httpClient)
	c.chat = NewChatClient(c.httpClient)
	c.bits = NewBitsClient(c.httpClient)
	c.conduits = NewConduitsClient(c.httpClient)
}

// Tokens returns the token store backing this client, so callers can rotate
// tokens at runtime.
func (c *Client) Tokens() *auth.TokenStore {
	return c.tokens
}

// Close implements helix.Client.Close.
func (c *Client) Close() error {
	err := c.httpClient.Close()
	if err != nil && c.logger != nil {
		c.logger.Warn("session teardown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return nil
}

// Streams implements helix.Client.Streams.
func (c *Client) Streams() helix.StreamsClient { return c.streams }

// Games implements helix.Client.Games.
func (c *Client) Games() helix.GamesClient { return c.games }

// Clips implements helix.Client.Clips.
func (c *Client) Clips() helix.ClipsClient { return c.clips }

// Videos implements helix.Client.Videos.
func (c *Client) Videos() helix.VideosClient { return c.videos }

// Search implements helix.Client.Search.
func (c *Client) Search() helix.SearchClient { return c.search }

// Channels implements helix.Client.Channels.
func (c *Client) Channels() helix.ChannelsClient { return c.channels }

// Chat implements helix.Client.Chat.
func (c *Client) Chat() helix.ChatClient { return c.chat }

// Bits implements helix.Client.Bits.
func (c *Client) Bits() helix.BitsClient { return c.bits }

// Conduits implements helix.Client.Conduits.
func (c *Client) Conduits() helix.ConduitsClient { return c.conduits }
