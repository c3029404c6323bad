package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	chatHTTP "secure-intent-router/internal/chat/delivery/http"
	"secure-intent-router/internal/middleware"
	"secure-intent-router/pkg/log"
)

// Pinger is a dependency the readiness probe checks, e.g. the Postgres pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	server      *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string

	// Chat domain
	chatHandler chatHTTP.Handler
	middleware  middleware.Middleware

	readiness map[string]Pinger
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	ChatHandler chatHTTP.Handler
	Middleware  middleware.Middleware

	// Readiness lists the dependencies /ready pings, keyed by name.
	Readiness map[string]Pinger
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		chatHandler: cfg.ChatHandler,
		middleware:  cfg.Middleware,
		readiness:   cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
