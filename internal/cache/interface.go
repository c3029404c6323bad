package cache

import (
	"context"
	"time"
)

// Store is the key-value backend. The method set mirrors the wire commands
// GET, SETEX, SCAN, DEL and INFO.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Scan(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, keys ...string) (int64, error)
	Info(ctx context.Context) (map[string]string, error)
}

// Cache is the tenant-scoped, best-effort operation result cache.
// No method returns an error: store faults degrade to a miss, a failed set or zero.
//
//go:generate mockery --name Cache
type Cache interface {
	DeriveKey(operation, tenant string, params map[string]any) string
	Get(ctx context.Context, operation, tenant string, params map[string]any) Lookup
	Set(ctx context.Context, operation, tenant string, value any, params map[string]any) bool
	SetWithTTL(ctx context.Context, operation, tenant string, value any, params map[string]any, ttl time.Duration) bool
	InvalidateTenant(ctx context.Context, tenant string) int
	Stats(ctx context.Context) Stats
}
