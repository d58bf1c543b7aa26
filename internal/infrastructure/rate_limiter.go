package infrastructure

import (
	"sync"
	"time"

	"github.com/bearh141/todo-list/internal/config"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per key. Used to slow down
// repeated login attempts for the same username.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mutex    sync.Mutex
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rateLimitWindow := config.GetEnvAsDuration("RATE_LIMIT_WINDOW", window)
	rateLimitMaxRequests := config.GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", limit)

	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(rateLimitWindow / time.Duration(rateLimitMaxRequests)),
		burst:    rateLimitMaxRequests,
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}
	rl.mutex.Unlock()

	return limiter.Allow()
}
