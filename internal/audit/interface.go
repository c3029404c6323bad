package audit

import "context"

// Sink receives every appended Record. Sinks are best-effort: a failing sink never fails a request.
type Sink interface {
	Publish(ctx context.Context, rec Record) error
}
