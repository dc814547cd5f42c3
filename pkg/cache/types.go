package cache

import "time"

// Defaults applied when Config leaves a field unset.
const (
	DefaultTTL        = 5 * time.Minute
	DefaultMaxEntries = 500
)

// Key is a comparable cache key with a stable string form.
type Key interface {
	comparable
	String() string
}

// Config configures a Cache.
type Config struct {
	TTL        time.Duration    // entry lifetime
	MaxEntries int              // LRU bound; the oldest entry is evicted beyond it
	Now        func() time.Time // clock used for computedAt; defaults to time.Now
}

// Entry is a stored value with its capture time.
type Entry[V any] struct {
	Data       V
	ComputedAt time.Time
}

// Stats are running counters since construction. Evictions counts every
// removal: expiry, the size bound and explicit invalidation.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}
