package auth_test

import (
	"context"
	"testing"

	"github.com/streamkit-io/helix-client/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenSource(t *testing.T) {
	t.Parallel()

	source := auth.NewStaticTokenSource("fixed")
	ctx := context.Background()

	token, err := source.Token(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "fixed", token)

	// Any key resolves to the same token
	token, err = source.Token(ctx, "user:123")
	require.NoError(t, err)
	assert.Equal(t, "fixed", token)
}

func TestStaticTokenSource_Empty(t *testing.T) {
	t.Parallel()

	source := auth.NewStaticTokenSource("")

	_, err := source.Token(context.Background(), "")
	require.ErrorIs(t, err, auth.ErrNoTokenForKey)
}

func TestTokenStore_AppToken(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore("app-token", nil)

	token, err := store.Token(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "app-token", token)
}

func TestTokenStore_UserTokens(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore("app-token", map[string]string{
		"user:123": "alice-token",
		"user:456": "bob-token",
	})
	ctx := context.Background()

	token, err := store.Token(ctx, "user:123")
	require.NoError(t, err)
	assert.Equal(t, "alice-token", token)

	_, err = store.Token(ctx, "user:999")
	require.ErrorIs(t, err, auth.ErrNoTokenForKey)
}

func TestTokenStore_MissingAppToken(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore("", nil)

	_, err := store.Token(context.Background(), "")
	require.ErrorIs(t, err, auth.ErrNoTokenForKey)
}

func TestTokenStore_Mutation(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore("app-token", nil)
	ctx := context.Background()

	store.SetToken("user:123", "alice-token")

	token, err := store.Token(ctx, "user:123")
	require.NoError(t, err)
	assert.Equal(t, "alice-token", token)

	store.SetToken("user:123", "rotated")

	token, err = store.Token(ctx, "user:123")
	require.NoError(t, err)
	assert.Equal(t, "rotated", token)

	store.RemoveToken("user:123")

	_, err = store.Token(ctx, "user:123")
	require.ErrorIs(t, err, auth.ErrNoTokenForKey)

	store.SetAppToken("refreshed")

	token, err = store.Token(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "refreshed", token)
}
