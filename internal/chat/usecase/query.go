package usecase

import (
	"context"

	"secure-intent-router/internal/audit"
	"secure-intent-router/internal/cache"
	"secure-intent-router/internal/chat"
	"secure-intent-router/internal/model"
	"secure-intent-router/internal/operation"
)

// Analyze runs the classifier and the router without touching storage or the model.
func (uc *implUseCase) Analyze(ctx context.Context, message string) (chat.AnalyzeOutput, error) {
	msg, err := normalize(message)
	if err != nil {
		return chat.AnalyzeOutput{}, err
	}
	match := uc.classifier.Classify(msg)
	return chat.AnalyzeOutput{
		Operation:  match.Operation,
		Matched:    match.Matched,
		Assessment: uc.router.Route(msg),
	}, nil
}

func (uc *implUseCase) Operations() []operation.Definition {
	return operation.Catalog()
}

// History returns the caller's records, newest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, limit int) []audit.Record {
	return uc.history.List(sc.TenantID, limit)
}

func (uc *implUseCase) CacheStats(ctx context.Context) cache.Stats {
	return uc.cache.Stats(ctx)
}

// InvalidateCache drops every cache entry of the caller's tenant.
func (uc *implUseCase) InvalidateCache(ctx context.Context, sc model.Scope) (int, error) {
	if !sc.Valid() {
		return 0, operation.ErrMissingTenant
	}
	n := uc.cache.InvalidateTenant(ctx, sc.TenantID)
	uc.l.Infof(ctx, "%s: tenant %s invalidated %d entries", LogPrefixCache, sc.TenantID, n)
	return n, nil
}
