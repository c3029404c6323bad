package middleware

import (
	"github.com/gin-gonic/gin"

	"secure-intent-router/pkg/response"
	"secure-intent-router/pkg/scope"
)

// Operator admits only the tenants registered with WithOperators. It must run after Auth.
// With no operators configured every caller is refused.
func (m Middleware) Operator() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := scope.GetScopeFromContext(c.Request.Context())
		if !ok {
			response.Unauthorized(c)
			return
		}
		if _, ok := m.operators[sc.TenantID]; !ok {
			m.l.Warnf(c.Request.Context(), "middleware.Operator: tenant %s refused", sc.TenantID)
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}
