package http

import (
	"github.com/gin-gonic/gin"

	"secure-intent-router/internal/chat"
	"secure-intent-router/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	SendMessage(c *gin.Context)
	Analyze(c *gin.Context)
	Operations(c *gin.Context)
	History(c *gin.Context)
	GetSettings(c *gin.Context)
	UpdateSettings(c *gin.Context)
	CacheStats(c *gin.Context)
	InvalidateCache(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
