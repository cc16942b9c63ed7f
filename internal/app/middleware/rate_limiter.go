package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/praveen-sripati/society-backend/internal/error/code"
	"github.com/praveen-sripati/society-backend/internal/error/response"
)

// clientLimiter pairs a token bucket with its last-seen time so stale
// entries can be evicted
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterRegistry struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

func newLimiterRegistry() *limiterRegistry {
	r := &limiterRegistry{limiters: make(map[string]*clientLimiter)}
	go r.evictLoop()
	return r
}

func (r *limiterRegistry) get(key string, rps float64, burst int) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.limiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
		r.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// evictLoop drops limiters idle for over an hour
func (r *limiterRegistry) evictLoop() {
	for {
		time.Sleep(10 * time.Minute)
		cutoff := time.Now().Add(-1 * time.Hour)
		r.mu.Lock()
		for key, entry := range r.limiters {
			if entry.lastSeen.Before(cutoff) {
				delete(r.limiters, key)
			}
		}
		r.mu.Unlock()
	}
}

var ipRegistry = newLimiterRegistry()

// IPRateLimiter limits each client IP to rps requests per second with the
// given burst
func IPRateLimiter(rps float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := ipRegistry.get(c.ClientIP(), rps, burst)
		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
