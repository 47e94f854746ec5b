// Package twitchclient provides the main entry point for creating Twitch Helix API clients
package twitchclient

import (
	"fmt"

	"github.com/streamkit-io/helix-client/internal/client"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// New creates a new Twitch Helix API client.
func New(config *helix.Config) (helix.Client, error) {
	if config == nil {
		return nil, helix.ErrConfigRequired
	}

	if config.ClientID == "" {
		return nil, helix.ErrClientIDRequired
	}

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithToken creates a client with a client ID and an app access token.
func NewWithToken(clientID, accessToken string) (helix.Client, error) {
	return New(&helix.Config{
		ClientID:    clientID,
		AccessToken: accessToken,
	})
}

// NewWithUserTokens creates a client with an app access token plus per-user
// tokens, keyed by the identity strings used as Route.TokenFor.
func NewWithUserTokens(clientID, accessToken string, userTokens map[string]string) (helix.Client, error) {
	return New(&helix.Config{
		ClientID:    clientID,
		AccessToken: accessToken,
		UserTokens:  userTokens,
	})
}
