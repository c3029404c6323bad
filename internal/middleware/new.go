package middleware

import (
	"secure-intent-router/pkg/log"
	"secure-intent-router/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
	operators  map[string]struct{}
}

// New builds the middleware set. A non-positive ratePerMin disables rate limiting.
func New(l log.Logger, jwtManager scope.Manager, ratePerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(ratePerMin),
	}
}

// WithOperators returns a copy of m that lets the given tenants through Operator.
func (m Middleware) WithOperators(tenantIDs ...string) Middleware {
	ops := make(map[string]struct{}, len(tenantIDs))
	for _, id := range tenantIDs {
		if id != "" {
			ops[id] = struct{}{}
		}
	}
	m.operators = ops
	return m
}
