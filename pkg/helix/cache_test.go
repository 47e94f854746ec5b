package helix_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/streamkit-io/helix-client/pkg/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := helix.NewMemoryCache(10)
	ctx := context.Background()

	entry := &helix.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
		ETag:      "abc123",
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	retrieved, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
	assert.Equal(t, entry.ETag, retrieved.ETag)
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := helix.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, helix.ErrCacheKeyNotFound)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := helix.NewMemoryCache(10)
	ctx := context.Background()

	entry := &helix.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(-1 * time.Hour), // Already expired
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.ErrorIs(t, err, helix.ErrCacheEntryExpired)

	// Expired entries are removed on read
	assert.False(t, cache.Has(ctx, "key1"))
}

func TestMemoryCache_Delete(t *testing.T) {
	t.Parallel()

	cache := helix.NewMemoryCache(10)
	ctx := context.Background()

	entry := &helix.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)
	assert.True(t, cache.Has(ctx, "key1"))

	err = cache.Delete(ctx, "key1")
	require.NoError(t, err)
	assert.False(t, cache.Has(ctx, "key1"))
}

func TestMemoryCache_Clear(t *testing.T) {
	t.Parallel()

	cache := helix.NewMemoryCache(10)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		entry := &helix.CacheEntry{
			Data:      []byte("test data"),
			ExpiresAt: time.Now().Add(1 * time.Hour),
		}
		_ = cache.Set(ctx, string(rune('a'+i)), entry)
	}

	err := cache.Clear(ctx)
	require.NoError(t, err)

	assert.False(t, cache.Has(ctx, "a"))
	assert.False(t, cache.Has(ctx, "b"))
	assert.False(t, cache.Has(ctx, "c"))
}

func TestMemoryCache_EvictsSoonestToExpire(t *testing.T) {
	t.Parallel()

	cache := helix.NewMemoryCache(2)
	ctx := context.Background()

	_ = cache.Set(ctx, "soon", &helix.CacheEntry{
		Data:      []byte("a"),
		ExpiresAt: time.Now().Add(1 * time.Minute),
	})
	_ = cache.Set(ctx, "later", &helix.CacheEntry{
		Data:      []byte("b"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	})

	// Third insert evicts the entry closest to expiry
	_ = cache.Set(ctx, "new", &helix.CacheEntry{
		Data:      []byte("c"),
		ExpiresAt: time.Now().Add(30 * time.Minute),
	})

	assert.False(t, cache.Has(ctx, "soon"))
	assert.True(t, cache.Has(ctx, "later"))
	assert.True(t, cache.Has(ctx, "new"))
}

func TestMemoryCache_Cleanup(t *testing.T) {
	t.Parallel()

	cache := helix.NewMemoryCache(10)
	ctx := context.Background()

	_ = cache.Set(ctx, "live", &helix.CacheEntry{
		Data:      []byte("a"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	})
	_ = cache.Set(ctx, "dead", &helix.CacheEntry{
		Data:      []byte("b"),
		ExpiresAt: time.Now().Add(-1 * time.Minute),
	})

	cache.Cleanup()

	assert.True(t, cache.Has(ctx, "live"))
	assert.False(t, cache.Has(ctx, "dead"))
}

func TestCacheManager_GetCacheKey(t *testing.T) {
	t.Parallel()

	manager := helix.NewCacheManager(helix.NewMemoryCache(10), nil)

	// Without params the key is just method:path
	assert.Equal(t, "GET:games/top", manager.GetCacheKey("GET", "games/top", nil))

	// With params, the key carries sorted param names and a digest
	withParams := manager.GetCacheKey("GET", "streams", map[string]string{
		"game_id": "509658",
		"first":   "20",
	})
	assert.Contains(t, withParams, "GET:streams:first,game_id:")

	// Order of map construction does not matter
	again := manager.GetCacheKey("GET", "streams", map[string]string{
		"first":   "20",
		"game_id": "509658",
	})
	assert.Equal(t, withParams, again)

	// Different values produce a different key
	other := manager.GetCacheKey("GET", "streams", map[string]string{
		"game_id": "21779",
		"first":   "20",
	})
	assert.NotEqual(t, withParams, other)
}

func TestCacheManager_GetSetRoundTrip(t *testing.T) {
	t.Parallel()

	manager := helix.NewCacheManager(helix.NewMemoryCache(10), nil)
	ctx := context.Background()

	err := manager.Set(ctx, "key1", []byte(`{"data":[]}`), time.Minute)
	require.NoError(t, err)

	data, err := manager.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"data":[]}`), data)

	stats := manager.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Sets)
}

func TestCacheManager_MissRecorded(t *testing.T) {
	t.Parallel()

	manager := helix.NewCacheManager(helix.NewMemoryCache(10), nil)

	_, err := manager.Get(context.Background(), "absent")
	require.Error(t, err)

	stats := manager.GetStats()
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(0), stats.Hits)
}

func TestCacheManager_NilBackendDisabled(t *testing.T) {
	t.Parallel()

	manager := helix.NewCacheManager(nil, nil)
	ctx := context.Background()

	_, err := manager.Get(ctx, "key1")
	require.ErrorIs(t, err, helix.ErrCacheDisabled)

	err = manager.Set(ctx, "key1", []byte("x"), time.Minute)
	require.ErrorIs(t, err, helix.ErrCacheDisabled)
}

func TestCacheManager_RejectsOversizedValues(t *testing.T) {
	t.Parallel()

	manager := helix.NewCacheManager(helix.NewMemoryCache(10), &helix.CacheOptions{
		DefaultTTL:   time.Minute,
		MaxEntrySize: 4,
	})

	err := manager.Set(context.Background(), "key1", []byte("too large"), time.Minute)
	require.ErrorIs(t, err, helix.ErrCacheValueTooBig)
}

func TestCacheStats_GetHitRate(t *testing.T) {
	t.Parallel()

	stats := &helix.CacheStats{}
	assert.InDelta(t, 0.0, stats.GetHitRate(), 0.001)

	stats.Hits = 3
	stats.Misses = 1
	assert.InDelta(t, 0.75, stats.GetHitRate(), 0.001)
}

func TestCachingPolicy_ShouldCache(t *testing.T) {
	t.Parallel()

	policy := helix.DefaultCachingPolicy()

	assert.True(t, policy.ShouldCache("GET", "games/top", http.StatusOK))
	assert.False(t, policy.ShouldCache("POST", "chat/announcements", http.StatusOK))
	assert.False(t, policy.ShouldCache("DELETE", "videos", http.StatusOK))

	// Errors are not cached by default
	assert.False(t, policy.ShouldCache("GET", "games/top", http.StatusNotFound))

	// Live stream listings are excluded
	assert.False(t, policy.ShouldCache("GET", "streams", http.StatusOK))
	assert.False(t, policy.ShouldCache("GET", "streams/followed", http.StatusOK))
}

func TestCachingPolicy_IncludePathsWin(t *testing.T) {
	t.Parallel()

	policy := &helix.CachingPolicy{
		CacheGET:     true,
		IncludePaths: []string{"games"},
	}

	assert.True(t, policy.ShouldCache("GET", "games/top", http.StatusOK))
	assert.False(t, policy.ShouldCache("GET", "chat/emotes/global", http.StatusOK))
}
