package market

import (
	"sync"
	"time"
)

// entry is a cached value and the time it was stored.
type entry struct {
	value      any
	insertedAt time.Time
}

// Cache is a process-wide key/value store whose staleness is checked on
// read against a caller-supplied TTL. Entries are never evicted.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	now   func() time.Time
}

// NewCache returns an empty cache using the wall clock.
func NewCache() *Cache {
	return &Cache{items: make(map[string]entry), now: time.Now}
}

// Get returns the value under key if it was stored less than ttl ago.
func (c *Cache) Get(key string, ttl time.Duration) (any, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(e.insertedAt) >= ttl {
		return nil, false
	}
	return e.value, true
}

// Put stores value under key, replacing any previous entry.
func (c *Cache) Put(key string, value any) {
	now := c.now()
	c.mu.Lock()
	c.items[key] = entry{value: value, insertedAt: now}
	c.mu.Unlock()
}

// Len returns the number of entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// lookup is a typed Get.
func lookup[T any](c *Cache, key string, ttl time.Duration) (T, bool) {
	var zero T
	v, ok := c.Get(key, ttl)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// NewCacheWithClock returns an empty cache reading time from now.
func NewCacheWithClock(now func() time.Time) *Cache {
	c := NewCache()
	c.now = now
	return c
}
