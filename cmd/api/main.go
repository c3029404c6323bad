package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"secure-intent-router/config"
	_ "secure-intent-router/docs" // Swagger docs
	"secure-intent-router/internal/audit"
	chatHTTP "secure-intent-router/internal/chat/delivery/http"
	chatRepo "secure-intent-router/internal/chat/repository/postgre"
	chatUC "secure-intent-router/internal/chat/usecase"
	"secure-intent-router/internal/httpserver"
	"secure-intent-router/internal/intent"
	"secure-intent-router/internal/middleware"
	opRepo "secure-intent-router/internal/operation/repository/postgre"
	opUC "secure-intent-router/internal/operation/usecase"
	"secure-intent-router/internal/router"
	"secure-intent-router/pkg/log"
	"secure-intent-router/pkg/postgres"
	"secure-intent-router/pkg/scope"
)

// @title       Secure Intent Router API
// @description Routes natural-language requests to whitelisted, tenant-scoped operations with caching, complexity routing and an audit trail.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Secure Intent Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres + migrations
	pool, err := postgres.NewPool(ctx, postgres.Config{DSN: cfg.Postgres.DSN, MaxConns: cfg.Postgres.MaxConns})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer pool.Close()

	migrations, err := opRepo.Migrations()
	if err != nil {
		logger.Error(ctx, "Failed to load migrations: ", err)
		return
	}
	settingsMigrations, err := chatRepo.Migrations()
	if err != nil {
		logger.Error(ctx, "Failed to load migrations: ", err)
		return
	}
	migrations = append(migrations, settingsMigrations...)
	if err := postgres.RunMigrations(ctx, pool, migrations); err != nil {
		logger.Error(ctx, "Failed to run migrations: ", err)
		return
	}

	// 4. Cache
	cacheAdapter, cacheReady, closeCache, err := setupCache(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize cache: ", err)
		return
	}
	defer closeCache()

	// 5. Audit trail
	sink, closeSink := setupAuditSink(ctx, cfg, logger)
	defer closeSink()
	history := audit.NewHistory(cfg.Audit.Capacity, sink, logger)

	// 6. Registry, classifier, router, delegate
	registry := opUC.New(opRepo.New(pool, logger), logger, opUC.Options{Timeout: cfg.Registry.Timeout})
	complexityRouter := router.New(router.Config{
		SimpleModel:   cfg.Router.SimpleModel,
		ModerateModel: cfg.Router.ModerateModel,
		ComplexModel:  cfg.Router.ComplexModel,
		CreativeModel: cfg.Router.CreativeModel,
		CheapModel:    cfg.Router.CheapModel,
	})

	deps := chatUC.Deps{
		Classifier: intent.New(),
		Router:     complexityRouter,
		Registry:   registry,
		Cache:      cacheAdapter,
		History:    history,
		Settings:   chatRepo.New(pool, logger),
	}
	if d := setupDelegate(ctx, cfg, logger); d != nil {
		deps.Delegate = d
	}
	uc := chatUC.New(logger, deps)

	// 7. HTTP Server
	mw := middleware.New(logger, scope.New(cfg.Auth.JWTSecret), cfg.RateLimit.PerMin).
		WithOperators(cfg.Auth.OperatorTenants...)
	if len(cfg.Auth.OperatorTenants) == 0 {
		logger.Warn(ctx, "No operator tenants configured, cache statistics are unreachable")
	}
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHTTP.New(logger, uc),
		Middleware:  mw,
		Readiness: map[string]httpserver.Pinger{
			"postgres": pool,
			"cache":    cacheReady,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
