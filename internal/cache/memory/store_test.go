package memory

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"secure-intent-router/internal/cache"
)

func TestStore_GetSetExpiry(t *testing.T) {
	ctx := context.Background()
	s := New(Options{})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	if err := s.SetEx(ctx, "op:t", []byte(`[1]`), 2*time.Second); err != nil {
		t.Fatalf("SetEx: %v", err)
	}
	got, err := s.Get(ctx, "op:t")
	if err != nil || string(got) != "[1]" {
		t.Fatalf("Get = %q, %v", got, err)
	}

	now = now.Add(2 * time.Second)
	if _, err := s.Get(ctx, "op:t"); !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestStore_SetExRejectsNonPositiveTTL(t *testing.T) {
	s := New(Options{})
	if err := s.SetEx(context.Background(), "k", nil, 0); !errors.Is(err, cache.ErrInvalidTTL) {
		t.Errorf("expected ErrInvalidTTL, got %v", err)
	}
}

func TestStore_ScanAndDel(t *testing.T) {
	ctx := context.Background()
	s := New(Options{})
	for _, k := range []string{"a:t1", "a:t1:abc", "b:t1", "a:t2", "a:t2:abc"} {
		_ = s.SetEx(ctx, k, []byte("1"), time.Minute)
	}

	keys, err := s.Scan(ctx, "*:t1:*")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(keys) != 1 || keys[0] != "a:t1:abc" {
		t.Errorf("unexpected keys %v", keys)
	}

	keys, _ = s.Scan(ctx, "*:t1")
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a:t1" || keys[1] != "b:t1" {
		t.Errorf("unexpected keys %v", keys)
	}

	n, err := s.Del(ctx, "a:t1", "b:t1", "missing")
	if err != nil || n != 2 {
		t.Errorf("Del = %d, %v", n, err)
	}
}

func TestStore_Info(t *testing.T) {
	ctx := context.Background()
	s := New(Options{})
	_ = s.SetEx(ctx, "k", []byte("hello"), time.Minute)
	_, _ = s.Get(ctx, "k")
	_, _ = s.Get(ctx, "nope")

	info, err := s.Info(ctx)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info[cache.InfoKeyspaceHits] != "1" || info[cache.InfoKeyspaceMisses] != "1" {
		t.Errorf("unexpected counters %v", info)
	}
	if info[cache.InfoUsedMemoryHuman] != "5 B" {
		t.Errorf("unexpected used memory %q", info[cache.InfoUsedMemoryHuman])
	}
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(Options{})
	if _, err := s.Get(ctx, "k"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
