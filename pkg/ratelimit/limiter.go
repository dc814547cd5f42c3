// Package ratelimit keeps one token bucket per key, with idle keys expiring
// on their own.
package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxKeys = 1000
	keyTTL  = 5 * time.Minute
)

// ErrLimitExceeded is returned when a key has no tokens left.
var ErrLimitExceeded = errors.New("rate limit exceeded")

// Limiter is a per-key rate limiter.
type Limiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New allows requestsPerMin per key, with a burst of a tenth of that (at
// least one). A non-positive requestsPerMin disables limiting.
func New(requestsPerMin int) *Limiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(float64(requestsPerMin) / 60.0)
	if requestsPerMin <= 0 {
		limit = rate.Inf
	}
	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxKeys, nil, keyTTL),
		rate:     limit,
		burst:    burst,
	}
}

// Allow consumes one token for key.
func (rl *Limiter) Allow(key string) error {
	if !rl.limiter(key).Allow() {
		return fmt.Errorf("%w for %s", ErrLimitExceeded, key)
	}
	return nil
}

func (rl *Limiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}
