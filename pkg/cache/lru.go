// Package cache provides an in-memory LRU cache with TTL for caching
// dashboard read responses.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Response is a cached HTTP response body.
type Response struct {
	Body        []byte
	ContentType string
}

type entry struct {
	key       string
	value     Response
	expiresAt time.Time
}

// Stats is a snapshot of cache effectiveness.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Size   int    `json:"size"`
}

// LRUCache is a thread-safe cache bounded by entry count and TTL. When full,
// the least recently used entry is evicted. Expired entries are dropped
// lazily on Get.
type LRUCache struct {
	mu      sync.Mutex
	order   *list.List
	items   map[string]*list.Element
	maxSize int
	ttl     time.Duration
	now     func() time.Time
	hits    uint64
	misses  uint64
}

// NewLRUCache creates a cache holding at most maxSize entries for ttl each.
func NewLRUCache(maxSize int, ttl time.Duration) *LRUCache {
	if maxSize < 1 {
		maxSize = 1
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LRUCache{
		order:   list.New(),
		items:   make(map[string]*list.Element, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *LRUCache) Get(key string) (Response, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses++
		return Response{}, false
	}
	e := el.Value.(*entry)
	if c.now().After(e.expiresAt) {
		c.removeElement(el)
		c.misses++
		return Response{}, false
	}

	c.order.MoveToFront(el)
	c.hits++
	return e.value, true
}

// Set stores value under key, refreshing its TTL and recency.
func (c *LRUCache) Set(key string, value Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry)
		e.value = value
		e.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	for c.order.Len() >= c.maxSize {
		c.removeElement(c.order.Back())
	}
	c.items[key] = c.order.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
}

func (c *LRUCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
}

func (c *LRUCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[string]*list.Element, c.maxSize)
}

// Size counts entries, including expired ones not yet dropped.
func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRUCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Hits: c.hits, Misses: c.misses, Size: c.order.Len()}
}

// must be called with c.mu held
func (c *LRUCache) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
