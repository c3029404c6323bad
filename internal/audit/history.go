package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"secure-intent-router/pkg/log"
)

// History is a bounded append-only log of Records, safe for concurrent writers.
// When full, the oldest record is dropped.
type History struct {
	mu       sync.Mutex
	records  []Record
	capacity int
	sink     Sink
	l        log.Logger
	now      func() time.Time
}

// NewHistory creates a History forwarding to sink. A nil sink means NoOpSink.
func NewHistory(capacity int, sink Sink, l log.Logger) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if sink == nil {
		sink = NoOpSink{}
	}
	return &History{
		records:  make([]Record, 0, capacity),
		capacity: capacity,
		sink:     sink,
		l:        l,
		now:      time.Now,
	}
}

// Append stamps rec with an id and timestamp, stores it and forwards it to the sink.
func (h *History) Append(ctx context.Context, rec Record) Record {
	rec.ID = uuid.NewString()
	rec.Timestamp = h.now().UTC()

	h.mu.Lock()
	if len(h.records) == h.capacity {
		copy(h.records, h.records[1:])
		h.records = h.records[:len(h.records)-1]
	}
	h.records = append(h.records, rec)
	h.mu.Unlock()

	if err := h.sink.Publish(ctx, rec); err != nil {
		h.l.Errorf(ctx, "%s: sink publish failed: %v", LogPrefixRecord, err)
	}
	return rec
}

// List returns up to limit records of tenantID, newest first. limit <= 0 means all.
func (h *History) List(tenantID string, limit int) []Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Record, 0)
	for i := len(h.records) - 1; i >= 0; i-- {
		if h.records[i].TenantID != tenantID {
			continue
		}
		out = append(out, h.records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Len returns the number of stored records across all tenants.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}
