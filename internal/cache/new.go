package cache

import (
	"sync/atomic"
	"time"

	"secure-intent-router/pkg/log"
)

// Adapter implements Cache on top of a Store.
type Adapter struct {
	store      Store
	l          log.Logger
	defaultTTL time.Duration
	opTimeout  time.Duration

	hits        atomic.Int64
	misses      atomic.Int64
	unavailable atomic.Int64
}

var _ Cache = (*Adapter)(nil)

// New creates a cache Adapter. Zero durations in opt fall back to DefaultTTL and DefaultOpTimeout.
func New(store Store, l log.Logger, opt Options) *Adapter {
	if store == nil {
		panic("cache: store is required")
	}
	a := &Adapter{
		store:      store,
		l:          l,
		defaultTTL: opt.DefaultTTL,
		opTimeout:  opt.OpTimeout,
	}
	if a.defaultTTL <= 0 {
		a.defaultTTL = DefaultTTL
	}
	if a.opTimeout <= 0 {
		a.opTimeout = DefaultOpTimeout
	}
	return a
}
