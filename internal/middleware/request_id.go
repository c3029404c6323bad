package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"secure-intent-router/pkg/log"
)

// RequestID tags the request context with an id so every log line of the request carries it.
// A well formed incoming X-Request-ID is reused.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
