package helix_test

import (
	"context"
	"testing"
	"time"

	"github.com/streamkit-io/helix-client/pkg/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheFromConfig_Memory(t *testing.T) {
	t.Parallel()

	cache, err := helix.NewCacheFromConfig(&helix.CacheConfig{
		Type:   helix.CacheTypeMemory,
		Memory: &helix.MemoryCacheConfig{MaxSize: 5},
	})
	require.NoError(t, err)
	assert.IsType(t, &helix.MemoryCache{}, cache)
}

func TestNewCacheFromConfig_NilDefaultsToMemory(t *testing.T) {
	t.Parallel()

	cache, err := helix.NewCacheFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &helix.MemoryCache{}, cache)
}

func TestNewCacheFromConfig_None(t *testing.T) {
	t.Parallel()

	cache, err := helix.NewCacheFromConfig(&helix.CacheConfig{Type: helix.CacheTypeNone})
	require.NoError(t, err)
	assert.IsType(t, &helix.NoOpCache{}, cache)
}

func TestNewCacheFromConfig_NATSRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := helix.NewCacheFromConfig(&helix.CacheConfig{Type: helix.CacheTypeNATS})
	require.ErrorIs(t, err, helix.ErrNATSConfigRequired)
}

func TestNewCacheFromConfig_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := helix.NewCacheFromConfig(&helix.CacheConfig{Type: "redis"})
	require.ErrorIs(t, err, helix.ErrUnsupportedCacheType)
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := helix.NewNoOpCache()
	ctx := context.Background()

	err := cache.Set(ctx, "key1", &helix.CacheEntry{Data: []byte("x")})
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.ErrorIs(t, err, helix.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "key1"))
}

func TestCacheChain_BackfillsOnHit(t *testing.T) {
	t.Parallel()

	l1 := helix.NewMemoryCache(10)
	l2 := helix.NewMemoryCache(10)
	chain := helix.NewCacheChain(l1, l2)
	ctx := context.Background()

	entry := &helix.CacheEntry{
		Data:      []byte("payload"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	// Seed only the second level
	require.NoError(t, l2.Set(ctx, "key1", entry))
	assert.False(t, l1.Has(ctx, "key1"))

	got, err := chain.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, got.Data)

	// The hit backfilled the first level
	assert.True(t, l1.Has(ctx, "key1"))
}

func TestCacheChain_MissInAllLevels(t *testing.T) {
	t.Parallel()

	chain := helix.NewCacheChain(helix.NewMemoryCache(10), helix.NewMemoryCache(10))

	_, err := chain.Get(context.Background(), "absent")
	require.ErrorIs(t, err, helix.ErrKeyNotFoundInAnyCache)
}

func TestCacheChain_SetAndDeleteFanOut(t *testing.T) {
	t.Parallel()

	l1 := helix.NewMemoryCache(10)
	l2 := helix.NewMemoryCache(10)
	chain := helix.NewCacheChain(l1, l2)
	ctx := context.Background()

	entry := &helix.CacheEntry{
		Data:      []byte("payload"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	require.NoError(t, chain.Set(ctx, "key1", entry))
	assert.True(t, l1.Has(ctx, "key1"))
	assert.True(t, l2.Has(ctx, "key1"))
	assert.True(t, chain.Has(ctx, "key1"))

	require.NoError(t, chain.Delete(ctx, "key1"))
	assert.False(t, l1.Has(ctx, "key1"))
	assert.False(t, l2.Has(ctx, "key1"))
}
