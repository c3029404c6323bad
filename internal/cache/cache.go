package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// DeriveKey implements Cache.
func (a *Adapter) DeriveKey(operation, tenant string, params map[string]any) string {
	return DeriveKey(operation, tenant, params)
}

// Get looks up the cached value for (operation, tenant, params).
func (a *Adapter) Get(ctx context.Context, operation, tenant string, params map[string]any) Lookup {
	key := DeriveKey(operation, tenant, params)

	ctx, cancel := context.WithTimeout(ctx, a.opTimeout)
	defer cancel()

	raw, err := a.store.Get(ctx, key)
	switch {
	case err == nil:
		a.hits.Add(1)
		a.l.Debugf(ctx, "%s: hit for key %s", LogPrefixGet, key)
		return Lookup{Key: key, Status: StatusHit, Value: raw}
	case errors.Is(err, ErrNotFound):
		a.misses.Add(1)
		a.l.Debugf(ctx, "%s: miss for key %s", LogPrefixGet, key)
		return Lookup{Key: key, Status: StatusMiss}
	default:
		a.unavailable.Add(1)
		a.l.Errorf(ctx, "%s: key %s: %v", LogPrefixGet, key, err)
		return Lookup{Key: key, Status: StatusUnavailable}
	}
}

// Set stores value with the default TTL.
func (a *Adapter) Set(ctx context.Context, operation, tenant string, value any, params map[string]any) bool {
	return a.SetWithTTL(ctx, operation, tenant, value, params, a.defaultTTL)
}

// SetWithTTL stores value for ttl, rounded up to whole seconds.
// A non-positive ttl stores nothing and returns false.
func (a *Adapter) SetWithTTL(ctx context.Context, operation, tenant string, value any, params map[string]any, ttl time.Duration) bool {
	key := DeriveKey(operation, tenant, params)
	if ttl <= 0 {
		a.l.Debugf(ctx, "%s: skipping key %s with ttl %s", LogPrefixSet, key, ttl)
		return false
	}

	raw, err := json.Marshal(value)
	if err != nil {
		a.l.Errorf(ctx, "%s: encode key %s: %v", LogPrefixSet, key, err)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, a.opTimeout)
	defer cancel()

	if err := a.store.SetEx(ctx, key, raw, wholeSeconds(ttl)); err != nil {
		a.l.Errorf(ctx, "%s: key %s: %v", LogPrefixSet, key, err)
		return false
	}
	a.l.Debugf(ctx, "%s: key %s ttl %s", LogPrefixSet, key, ttl)
	return true
}

// InvalidateTenant deletes every key scoped to tenant and returns how many were removed.
func (a *Adapter) InvalidateTenant(ctx context.Context, tenant string) int {
	ctx, cancel := context.WithTimeout(ctx, a.opTimeout)
	defer cancel()

	seen := make(map[string]struct{})
	var keys []string
	for _, pattern := range tenantPatterns(tenant) {
		found, err := a.store.Scan(ctx, pattern)
		if err != nil {
			a.l.Errorf(ctx, "%s: scan %s: %v", LogPrefixInvalidate, pattern, err)
			return 0
		}
		for _, k := range found {
			if _, dup := seen[k]; dup || !ownedBy(k, tenant) {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return 0
	}

	n, err := a.store.Del(ctx, keys...)
	if err != nil {
		a.l.Errorf(ctx, "%s: delete %d keys: %v", LogPrefixInvalidate, len(keys), err)
		return 0
	}
	a.l.Infof(ctx, "%s: invalidated %d cache entries for tenant %s", LogPrefixInvalidate, n, tenant)
	return int(n)
}

// Stats reports store INFO counters plus this adapter's own hit/miss counters.
func (a *Adapter) Stats(ctx context.Context) Stats {
	st := Stats{
		LocalHits:        a.hits.Load(),
		LocalMisses:      a.misses.Load(),
		LocalUnavailable: a.unavailable.Load(),
	}

	ctx, cancel := context.WithTimeout(ctx, a.opTimeout)
	defer cancel()

	info, err := a.store.Info(ctx)
	if err != nil {
		a.l.Errorf(ctx, "%s: %v", LogPrefixStats, err)
		return st
	}
	st.Hits = parseInt(info[InfoKeyspaceHits])
	st.Misses = parseInt(info[InfoKeyspaceMisses])
	st.UsedMemory = info[InfoUsedMemoryHuman]
	st.ConnectedClients = parseInt(info[InfoConnectedClients])
	return st
}

func wholeSeconds(ttl time.Duration) time.Duration {
	secs := ttl / time.Second
	if ttl%time.Second != 0 {
		secs++
	}
	return secs * time.Second
}

func parseInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
