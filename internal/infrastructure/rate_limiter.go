package infrastructure

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter hands out a token bucket per key (user id). It guards the
// generation endpoint so one user cannot hammer the external text service.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(perMinute, burst int) *RateLimiter {
	perMinute = GetEnvAsInt("RATE_LIMIT_PER_MINUTE", perMinute)
	burst = GetEnvAsInt("RATE_LIMIT_BURST", burst)

	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}
	rl.mu.Unlock()

	return limiter.Allow()
}
