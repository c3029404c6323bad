package http

import (
	"github.com/gin-gonic/gin"

	"secure-intent-router/internal/middleware"
)

// RegisterRoutes maps the chat and cache endpoints. Every route needs a tenant, so Auth
// runs first and the rate limit is keyed by the resulting scope.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chatGroup := rg.Group("/chat", mw.Auth(), mw.RateLimit())
	{
		chatGroup.POST("/messages", h.SendMessage)
		chatGroup.POST("/analyze", h.Analyze)
		chatGroup.GET("/operations", h.Operations)
		chatGroup.GET("/history", h.History)
		chatGroup.GET("/settings", h.GetSettings)
		chatGroup.PUT("/settings", h.UpdateSettings)
	}

	cacheGroup := rg.Group("/cache", mw.Auth(), mw.RateLimit())
	{
		// Counters are store-wide, so only operator tenants may read them.
		cacheGroup.GET("/stats", mw.Operator(), h.CacheStats)
		cacheGroup.DELETE("", h.InvalidateCache)
	}
}
