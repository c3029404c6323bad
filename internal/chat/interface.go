package chat

import (
	"context"

	"secure-intent-router/internal/audit"
	"secure-intent-router/internal/cache"
	"secure-intent-router/internal/model"
	"secure-intent-router/internal/operation"
)

// UseCase is the Dispatch Orchestrator.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Dispatch runs one message through classify, cache, execute or delegate, and audit.
	Dispatch(ctx context.Context, sc model.Scope, input DispatchInput) (DispatchOutput, error)
	// Analyze reports how a message would be routed without executing anything.
	Analyze(ctx context.Context, message string) (AnalyzeOutput, error)
	Operations() []operation.Definition
	History(ctx context.Context, sc model.Scope, limit int) []audit.Record
	// Settings returns the tenant's delegate configuration, or the defaults when none is stored.
	Settings(ctx context.Context, sc model.Scope) (DelegateSettings, error)
	UpdateSettings(ctx context.Context, sc model.Scope, input UpdateSettingsInput) (DelegateSettings, error)
	CacheStats(ctx context.Context) cache.Stats
	InvalidateCache(ctx context.Context, sc model.Scope) (int, error)
}
