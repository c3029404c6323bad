// Package redis is the shared cache.Store backed by a Redis server.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"secure-intent-router/internal/cache"
)

const (
	logPrefix = "internal/cache/redis"
	scanCount = 100
)

// Store issues GET, SETEX, SCAN, DEL and INFO against a Redis client.
type Store struct {
	client goredis.UniversalClient
}

var _ cache.Store = (*Store)(nil)

// New wraps an existing client.
func New(client goredis.UniversalClient) *Store {
	if client == nil {
		panic("cache/redis: client is required")
	}
	return &Store{client: client}
}

// Options holds connection parameters.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens a client and verifies it with PING.
func Connect(ctx context.Context, opt Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s - failed to ping %s: %w", logPrefix, opt.Addr, err)
	}
	return client, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, cache.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s - GET: %w", logPrefix, err)
	}
	return raw, nil
}

func (s *Store) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < time.Second {
		return cache.ErrInvalidTTL
	}
	if err := s.client.SetEx(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%s - SETEX: %w", logPrefix, err)
	}
	return nil
}

func (s *Store) Scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%s - SCAN: %w", logPrefix, err)
	}
	return keys, nil
}

func (s *Store) Del(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	n, err := s.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("%s - DEL: %w", logPrefix, err)
	}
	return n, nil
}

func (s *Store) Info(ctx context.Context) (map[string]string, error) {
	raw, err := s.client.Info(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("%s - INFO: %w", logPrefix, err)
	}
	return parseInfo(raw), nil
}
