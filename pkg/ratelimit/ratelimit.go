// Package ratelimit throttles repeated user actions with per-key token
// buckets. Stale buckets are dropped so the map does not grow with every
// user the bot has ever seen.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const bucketTTL = 5 * time.Minute

type bucket struct {
	lim *rate.Limiter
	ts  time.Time
}

type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

// New allows burst actions per key, refilling over ttl.
func New(burst int, ttl time.Duration) *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Every(ttl / time.Duration(burst)),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.ts = now

	l.sweep(now)
	return b.lim.Allow()
}

func (l *Limiter) sweep(now time.Time) {
	for k, b := range l.buckets {
		if now.Sub(b.ts) > bucketTTL {
			delete(l.buckets, k)
		}
	}
}
