package usecase

import (
	"context"

	"secure-intent-router/internal/model"
	"secure-intent-router/internal/operation"
	repo "secure-intent-router/internal/operation/repository"
)

// GetProjectCosts totals the tenant's cost entries per project.
func (uc *implUseCase) GetProjectCosts(ctx context.Context, sc model.Scope, input operation.ProjectCostsInput) ([]operation.ProjectCost, error) {
	const name = operation.GetProjectCosts
	if err := checkScope(sc.TenantID); err != nil {
		return nil, err
	}
	if err := uc.check(name, input); err != nil {
		return nil, err
	}

	costs, err := call(ctx, uc, name, MsgProjectCostsFailed, func(ctx context.Context) ([]operation.ProjectCost, error) {
		return uc.repo.SumProjectCosts(ctx, repo.SumProjectCostsOptions{TenantID: sc.TenantID, ProjectID: input.ProjectID})
	})
	if err != nil {
		return nil, err
	}
	if err := ensureOwned(ctx, uc, name, sc.TenantID, costs, costTenant); err != nil {
		return nil, err
	}
	return costs, nil
}
