package main

import (
	"context"

	"secure-intent-router/config"
	"secure-intent-router/internal/audit"
	"secure-intent-router/internal/cache"
	"secure-intent-router/internal/cache/memory"
	cacheRedis "secure-intent-router/internal/cache/redis"
	"secure-intent-router/internal/delegate"
	"secure-intent-router/internal/httpserver"
	"secure-intent-router/pkg/llmprovider"
	"secure-intent-router/pkg/log"
)

const natsClientName = "secure-intent-router"

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var _ httpserver.Pinger = pingFunc(nil)

// setupCache builds the configured backend. The returned Pinger backs the readiness probe.
func setupCache(ctx context.Context, cfg *config.Config, l log.Logger) (*cache.Adapter, httpserver.Pinger, func(), error) {
	opt := cache.Options{DefaultTTL: cfg.Cache.DefaultTTL, OpTimeout: cfg.Cache.OpTimeout}

	if cfg.Cache.Backend == config.CacheBackendMemory {
		l.Infof(ctx, "Cache backend: memory (size %d)", cfg.Cache.MemorySize)
		store := memory.New(memory.Options{Size: cfg.Cache.MemorySize})
		ready := pingFunc(func(context.Context) error { return nil })
		return cache.New(store, l, opt), ready, func() {}, nil
	}

	client, err := cacheRedis.Connect(ctx, cacheRedis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	l.Infof(ctx, "Cache backend: redis at %s", cfg.Redis.Addr)

	ready := pingFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() })
	closeFn := func() {
		if err := client.Close(); err != nil {
			l.Warnf(ctx, "redis close: %v", err)
		}
	}
	return cache.New(cacheRedis.New(client), l, opt), ready, closeFn, nil
}

// setupAuditSink always logs records and also publishes them on NATS when a URL is set.
// A NATS outage at startup degrades to logging only.
func setupAuditSink(ctx context.Context, cfg *config.Config, l log.Logger) (audit.Sink, func()) {
	logSink := audit.NewLogSink(l)
	if cfg.Audit.NATSURL == "" {
		return logSink, func() {}
	}

	nc, err := audit.Connect(ctx, cfg.Audit.NATSURL, natsClientName, l)
	if err != nil {
		l.Warnf(ctx, "Audit NATS sink not available, logging only: %v", err)
		return logSink, func() {}
	}
	l.Infof(ctx, "Audit records published on %s", cfg.Audit.NATSSubject)
	return audit.MultiSink{logSink, audit.NewNATSSink(nc, cfg.Audit.NATSSubject)}, func() {
		if err := nc.Drain(); err != nil {
			l.Warnf(ctx, "nats drain: %v", err)
		}
	}
}

// setupDelegate returns nil when no provider is configured; unclassified messages then
// only get a complexity assessment.
func setupDelegate(ctx context.Context, cfg *config.Config, l log.Logger) *delegate.Delegate {
	if !cfg.LLM.Enabled() {
		l.Warn(ctx, "External model delegate disabled: no LLM provider enabled")
		return nil
	}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		l.Warnf(ctx, "External model delegate disabled: %v", err)
		return nil
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		l.Warnf(ctx, "External model delegate disabled: %v", err)
		return nil
	}

	l.Infof(ctx, "External model delegate enabled with %d provider(s)", len(providers))
	return delegate.New(llmprovider.NewManager(providers, managerCfg, l), l)
}
