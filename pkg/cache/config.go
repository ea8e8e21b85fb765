package cache

import "time"

const (
	DefaultTTL     = 60 * time.Second
	DefaultMaxSize = 500
)

// CacheConfig holds configuration for the response cache.
type CacheConfig struct {
	// Enabled controls whether caching is active. When false no middleware
	// is applied and every request reaches its handler.
	Enabled bool

	// CatalogTTL applies to tool, server and category listings.
	CatalogTTL time.Duration

	// AccountTTL applies to user and auth status reads, which go stale
	// sooner than catalog data.
	AccountTTL time.Duration

	// MaxSize is the maximum number of entries per cache instance.
	MaxSize int
}

// DefaultCacheConfig returns a CacheConfig with sensible defaults.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Enabled:    true,
		CatalogTTL: DefaultTTL,
		AccountTTL: 15 * time.Second,
		MaxSize:    DefaultMaxSize,
	}
}
