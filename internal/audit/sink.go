package audit

import (
	"context"

	"secure-intent-router/pkg/log"
)

// NoOpSink discards records.
type NoOpSink struct{}

func (NoOpSink) Publish(context.Context, Record) error { return nil }

// LogSink writes records to the structured logger.
type LogSink struct {
	l log.Logger
}

func NewLogSink(l log.Logger) LogSink {
	return LogSink{l: l}
}

func (s LogSink) Publish(ctx context.Context, rec Record) error {
	s.l.Infof(ctx, "audit: tenant=%s operation=%s success=%t from_cache=%t error_kind=%s",
		rec.TenantID, rec.Operation, rec.Success, rec.FromCache, rec.ErrorKind)
	return nil
}

// MultiSink fans a record out to several sinks and returns the first error.
type MultiSink []Sink

func (m MultiSink) Publish(ctx context.Context, rec Record) error {
	var first error
	for _, s := range m {
		if err := s.Publish(ctx, rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}
