package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "secure-intent-router/pkg/errors"
	"secure-intent-router/pkg/response"
	"secure-intent-router/pkg/scope"
)

// RateLimit throttles each tenant separately. Requests without a scope are keyed by client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if sc, ok := scope.GetScopeFromContext(c.Request.Context()); ok {
			key = "tenant:" + sc.TenantID
		}

		if !m.limiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.Abort(c, pkgErrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key; idle buckets expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCapacity, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
