package log

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestInit_UnknownLevelDoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "loud", Mode: ModeProduction, Encoding: EncodingJSON})
	l.Infof(WithRequestID(context.Background(), "abc"), "hello %s", "world")
	l.Debug(context.Background(), "not emitted at info")
}
