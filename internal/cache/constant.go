package cache

import "time"

// Log prefixes
const (
	LogPrefixGet        = "internal.cache.Get"
	LogPrefixSet        = "internal.cache.Set"
	LogPrefixInvalidate = "internal.cache.InvalidateTenant"
	LogPrefixStats      = "internal.cache.Stats"
)

// Defaults
const (
	DefaultTTL       = 5 * time.Minute
	DefaultOpTimeout = 500 * time.Millisecond

	KeySeparator = ":"
)

// INFO fields read by Stats
const (
	InfoKeyspaceHits     = "keyspace_hits"
	InfoKeyspaceMisses   = "keyspace_misses"
	InfoUsedMemoryHuman  = "used_memory_human"
	InfoConnectedClients = "connected_clients"
)
