package cache

import (
	"encoding/json"
	"time"
)

// LookupStatus is the outcome of a cache read.
type LookupStatus int

const (
	StatusMiss LookupStatus = iota
	StatusHit
	// StatusUnavailable means the store failed or timed out. Callers treat it as a miss.
	StatusUnavailable
)

func (s LookupStatus) String() string {
	switch s {
	case StatusHit:
		return "hit"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "miss"
	}
}

// Lookup is the result of Cache.Get. Value is set only on a hit.
type Lookup struct {
	Key    string
	Status LookupStatus
	Value  json.RawMessage
}

// Hit reports whether the lookup found a value.
func (l Lookup) Hit() bool {
	return l.Status == StatusHit
}

// Decode unmarshals a hit into T.
func Decode[T any](l Lookup) (T, error) {
	var out T
	if !l.Hit() {
		return out, ErrNotFound
	}
	err := json.Unmarshal(l.Value, &out)
	return out, err
}

// Stats is a read-only snapshot of the store plus this process' counters.
// Fields the store cannot report stay at their zero value.
type Stats struct {
	Hits             int64  `json:"hits"`
	Misses           int64  `json:"misses"`
	UsedMemory       string `json:"used_memory"`
	ConnectedClients int64  `json:"connected_clients"`

	LocalHits        int64 `json:"local_hits"`
	LocalMisses      int64 `json:"local_misses"`
	LocalUnavailable int64 `json:"local_unavailable"`
}

// Options configures the Adapter.
type Options struct {
	DefaultTTL time.Duration
	OpTimeout  time.Duration
}
