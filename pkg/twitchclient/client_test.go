package twitchclient_test

import (
	"testing"

	"github.com/streamkit-io/helix-client/pkg/helix"
	"github.com/streamkit-io/helix-client/pkg/twitchclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := twitchclient.New(nil)
	require.ErrorIs(t, err, helix.ErrConfigRequired)
}

func TestNew_MissingClientID(t *testing.T) {
	t.Parallel()

	_, err := twitchclient.New(&helix.Config{AccessToken: "token"})
	require.ErrorIs(t, err, helix.ErrClientIDRequired)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := twitchclient.NewWithToken("client-id", "token")
	require.NoError(t, err)

	defer func() { _ = client.Close() }()

	assert.NotNil(t, client.Streams())
	assert.NotNil(t, client.Games())
	assert.NotNil(t, client.Conduits())
}

func TestNewWithUserTokens(t *testing.T) {
	t.Parallel()

	client, err := twitchclient.NewWithUserTokens("client-id", "token", map[string]string{
		"user:123": "user-token",
	})
	require.NoError(t, err)

	defer func() { _ = client.Close() }()

	assert.NotNil(t, client.Chat())
}
