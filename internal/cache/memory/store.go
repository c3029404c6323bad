// Package memory is an in-process cache.Store backed by an expirable LRU.
// It serves single-instance deployments and tests; state is not shared across processes.
package memory

import (
	"context"
	"path"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"secure-intent-router/internal/cache"
)

const (
	DefaultSize   = 10000
	DefaultMaxTTL = time.Hour
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store keeps at most Size entries. An entry lives for min(ttl, MaxTTL).
type Store struct {
	lru *expirable.LRU[string, entry]
	now func() time.Time

	hits   atomic.Int64
	misses atomic.Int64
}

var _ cache.Store = (*Store)(nil)

// Options configures the memory Store.
type Options struct {
	Size   int
	MaxTTL time.Duration
}

// New creates a memory Store.
func New(opt Options) *Store {
	if opt.Size <= 0 {
		opt.Size = DefaultSize
	}
	if opt.MaxTTL <= 0 {
		opt.MaxTTL = DefaultMaxTTL
	}
	return &Store{
		lru: expirable.NewLRU[string, entry](opt.Size, nil, opt.MaxTTL),
		now: time.Now,
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := s.lru.Get(key)
	if !ok || !s.now().Before(e.expiresAt) {
		if ok {
			s.lru.Remove(key)
		}
		s.misses.Add(1)
		return nil, cache.ErrNotFound
	}
	s.hits.Add(1)
	return e.value, nil
}

func (s *Store) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ttl <= 0 {
		return cache.ErrInvalidTTL
	}
	buf := make([]byte, len(value))
	copy(buf, value)
	s.lru.Add(key, entry{value: buf, expiresAt: s.now().Add(ttl)})
	return nil
}

// Scan matches keys with path.Match, which shares the glob syntax used by SCAN MATCH
// for the characters that can appear in a derived key.
func (s *Store) Scan(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, err
	}
	var out []string
	for _, k := range s.lru.Keys() {
		if ok, _ := path.Match(pattern, k); ok {
			out = append(out, k)
		}
	}
	return out, nil
}

func (s *Store) Del(ctx context.Context, keys ...string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var n int64
	for _, k := range keys {
		if s.lru.Remove(k) {
			n++
		}
	}
	return n, nil
}

func (s *Store) Info(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var used uint64
	for _, e := range s.lru.Values() {
		used += uint64(len(e.value))
	}
	return map[string]string{
		cache.InfoKeyspaceHits:     strconv.FormatInt(s.hits.Load(), 10),
		cache.InfoKeyspaceMisses:   strconv.FormatInt(s.misses.Load(), 10),
		cache.InfoUsedMemoryHuman:  humanize.Bytes(used),
		cache.InfoConnectedClients: "1",
	}, nil
}
