package cache

import "net/http"

// CacheManager holds one cache per class of dashboard read. A nil manager
// is valid and caches nothing.
type CacheManager struct {
	catalog *LRUCache
	account *LRUCache
}

// NewCacheManager returns nil when cfg is nil or disabled.
func NewCacheManager(cfg *CacheConfig) *CacheManager {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	return &CacheManager{
		catalog: NewLRUCache(cfg.MaxSize, cfg.CatalogTTL),
		account: NewLRUCache(cfg.MaxSize, cfg.AccountTTL),
	}
}

// CatalogMiddleware caches tool, server and category listings.
func (cm *CacheManager) CatalogMiddleware() func(http.Handler) http.Handler {
	if cm == nil {
		return passthrough
	}
	return Middleware(cm.catalog)
}

// AccountMiddleware caches user and auth status reads.
func (cm *CacheManager) AccountMiddleware() func(http.Handler) http.Handler {
	if cm == nil {
		return passthrough
	}
	return Middleware(cm.account)
}

func (cm *CacheManager) InvalidateAll() {
	if cm == nil {
		return
	}
	cm.catalog.InvalidateAll()
	cm.account.InvalidateAll()
}

// Stats reports per-cache statistics keyed by cache name.
func (cm *CacheManager) Stats() map[string]Stats {
	if cm == nil {
		return map[string]Stats{}
	}
	return map[string]Stats{
		"catalog": cm.catalog.Stats(),
		"account": cm.account.Stats(),
	}
}

func passthrough(next http.Handler) http.Handler {
	return next
}
