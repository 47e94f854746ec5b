package helix

import (
	"context"
	"errors"
	"fmt"

	"github.com/streamkit-io/helix-client/internal/constants"
)

// CacheType selects the response cache backend.
type CacheType string

const (
	// CacheTypeMemory is the in-process cache backend.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS is the NATS JetStream KV backend.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeNone disables caching.
	CacheTypeNone CacheType = "none"
)

// Static errors for err113 compliance.
var (
	ErrNATSConfigRequired    = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType  = errors.New("unsupported cache type")
	ErrKeyNotFoundInAnyCache = errors.New("key not found in any cache")
)

// CacheConfig selects and configures a response cache backend.
type CacheConfig struct {
	// Type is the cache backend type
	Type CacheType

	// Memory cache configuration
	Memory *MemoryCacheConfig

	// NATS KV cache configuration
	NATS *NATSKVConfig

	// Common options applied to any backend. If nil, DefaultCacheOptions() is used.
	Options *CacheOptions
}

// MemoryCacheConfig configures the in-process backend.
type MemoryCacheConfig struct {
	// MaxSize is the maximum number of items in the cache
	MaxSize int
}

// DefaultCacheConfig returns an in-process cache configuration.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Type: CacheTypeMemory,
		Memory: &MemoryCacheConfig{
			MaxSize: constants.DefaultCacheSize,
		},
		Options: DefaultCacheOptions(),
	}
}

// NewCacheFromConfig builds the backend the configuration names. A nil
// config falls back to DefaultCacheConfig.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	switch config.Type {
	case CacheTypeMemory:
		size := constants.DefaultCacheSize
		if config.Memory != nil {
			size = config.Memory.MaxSize
		}

		return NewMemoryCache(size), nil

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSKVCache(config.NATS)

	case CacheTypeNone:
		return NewNoOpCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCacheType, config.Type)
	}
}

// NoOpCache satisfies Cache while storing nothing. Reads always miss with
// ErrCacheDisabled and writes are discarded.
type NoOpCache struct{}

// NewNoOpCache creates a no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get implements Cache.Get.
func (c *NoOpCache) Get(context.Context, string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set implements Cache.Set.
func (c *NoOpCache) Set(context.Context, string, *CacheEntry) error {
	return nil
}

// Delete implements Cache.Delete.
func (c *NoOpCache) Delete(context.Context, string) error {
	return nil
}

// Clear implements Cache.Clear.
func (c *NoOpCache) Clear(context.Context) error {
	return nil
}

// Has implements Cache.Has.
func (c *NoOpCache) Has(context.Context, string) bool {
	return false
}

// CacheChain layers cache backends, fastest first. Reads stop at the first
// level that hits and backfill the levels above it; writes fan out to every
// level.
type CacheChain struct {
	levels []Cache
}

// NewCacheChain creates a chain over the given backends in lookup order.
func NewCacheChain(levels ...Cache) *CacheChain {
	return &CacheChain{levels: levels}
}

// Get implements Cache.Get.
func (c *CacheChain) Get(ctx context.Context, key string) (*CacheEntry, error) {
	for i, level := range c.levels {
		entry, err := level.Get(ctx, key)
		if err != nil {
			continue
		}

		for _, above := range c.levels[:i] {
			_ = above.Set(ctx, key, entry)
		}

		return entry, nil
	}

	return nil, ErrKeyNotFoundInAnyCache
}

// Set implements Cache.Set.
func (c *CacheChain) Set(ctx context.Context, key string, entry *CacheEntry) error {
	var errs []error

	for _, level := range c.levels {
		errs = append(errs, level.Set(ctx, key, entry))
	}

	return errors.Join(errs...)
}

// Delete implements Cache.Delete.
func (c *CacheChain) Delete(ctx context.Context, key string) error {
	var errs []error

	for _, level := range c.levels {
		errs = append(errs, level.Delete(ctx, key))
	}

	return errors.Join(errs...)
}

// Clear implements Cache.Clear.
func (c *CacheChain) Clear(ctx context.Context) error {
	var errs []error

	for _, level := range c.levels {
		errs = append(errs, level.Clear(ctx))
	}

	return errors.Join(errs...)
}

// Has implements Cache.Has.
func (c *CacheChain) Has(ctx context.Context, key string) bool {
	for _, level := range c.levels {
		if level.Has(ctx, key) {
			return true
		}
	}

	return false
}
