package middleware

import (
	"github.com/gin-gonic/gin"

	"secure-intent-router/internal/model"
	"secure-intent-router/pkg/response"
	"secure-intent-router/pkg/scope"
)

// Auth verifies the bearer token and stores the caller's Scope in the request context.
// The token subject is the tenant id and must be a UUID.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := scope.BearerToken(c.GetHeader(HeaderAuthorization))
		if !ok {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		sc, err := model.NewScope(payload.Subject, payload.Email)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: subject %q: %v", payload.Subject, err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}
