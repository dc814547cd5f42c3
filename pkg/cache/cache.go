// Package cache is a TTL-bound, size-bounded result cache with explicit
// invalidation. A miss is never an error; it is the signal to recompute.
package cache

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Cache maps keys to previously computed values. Expiry and the size bound are
// independent triggers; either can remove an entry first.
type Cache[K Key, V any] struct {
	lru   *expirable.LRU[K, Entry[V]]
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a cache. Zero TTL or MaxEntries fall back to the defaults.
func New[K Key, V any](cfg Config) *Cache[K, V] {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	c := &Cache[K, V]{ttl: cfg.TTL, now: cfg.Now}
	c.lru = expirable.NewLRU[K, Entry[V]](cfg.MaxEntries, func(K, Entry[V]) {
		c.evictions.Add(1)
	}, cfg.TTL)
	return c
}

// Get returns the value stored under key while it is younger than the TTL.
// Stale entries are evicted on access and reported as a miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	entry, ok := c.lookup(key)
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	return entry.Data, true
}

// getEntry is Get including the capture time.
func (c *Cache[K, V]) getEntry(key K) (Entry[V], bool) {
	entry, ok := c.lookup(key)
	if !ok {
		c.misses.Add(1)
		return Entry[V]{}, false
	}
	c.hits.Add(1)
	return entry, true
}

// Set stores value under key, stamped with the current time.
func (c *Cache[K, V]) Set(key K, value V) Entry[V] {
	entry := Entry[V]{Data: value, ComputedAt: c.now()}
	c.lru.Add(key, entry)
	return entry
}

// GetOrCompute returns the cached entry for key or computes, stores and returns
// a new one. Concurrent callers for the same key share a single computation.
// hit reports whether the value came from the cache.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() V) (entry Entry[V], hit bool) {
	if entry, ok := c.getEntry(key); ok {
		return entry, true
	}

	v, _, _ := c.group.Do(key.String(), func() (any, error) {
		if entry, ok := c.lookup(key); ok {
			return entry, nil
		}
		return c.Set(key, compute()), nil
	})
	return v.(Entry[V]), false
}

// Invalidate removes every entry whose key matches pred and returns how many
// were removed.
func (c *Cache[K, V]) Invalidate(pred func(K) bool) int {
	removed := 0
	for _, key := range c.lru.Keys() {
		if pred(key) && c.lru.Remove(key) {
			removed++
		}
	}
	return removed
}

// InvalidateAll empties the cache and returns how many entries were dropped.
func (c *Cache[K, V]) InvalidateAll() int {
	n := c.lru.Len()
	c.lru.Purge()
	return n
}

// Len returns the number of stored entries, stale ones included until evicted.
func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}

// Stats returns the hit, miss and eviction counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func (c *Cache[K, V]) lookup(key K) (Entry[V], bool) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return Entry[V]{}, false
	}
	if c.now().Sub(entry.ComputedAt) >= c.ttl {
		c.lru.Remove(key)
		return Entry[V]{}, false
	}
	return entry, true
}
