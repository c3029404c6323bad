package usecase

import (
	"context"

	"secure-intent-router/internal/model"
	"secure-intent-router/internal/operation"
	repo "secure-intent-router/internal/operation/repository"
)

// ListSuppliers lists the tenant's active suppliers.
func (uc *implUseCase) ListSuppliers(ctx context.Context, sc model.Scope) ([]operation.Supplier, error) {
	const name = operation.ListSuppliers
	if err := checkScope(sc.TenantID); err != nil {
		return nil, err
	}

	suppliers, err := call(ctx, uc, name, MsgListSuppliersFailed, func(ctx context.Context) ([]operation.Supplier, error) {
		return uc.repo.ListSuppliers(ctx, repo.ListSuppliersOptions{TenantID: sc.TenantID, ActiveOnly: true})
	})
	if err != nil {
		return nil, err
	}
	if err := ensureOwned(ctx, uc, name, sc.TenantID, suppliers, supplierTenant); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// CreateSupplier validates input and inserts a supplier owned by the tenant.
func (uc *implUseCase) CreateSupplier(ctx context.Context, sc model.Scope, input operation.CreateSupplierInput) (operation.Supplier, error) {
	const name = operation.CreateSupplier
	if err := checkScope(sc.TenantID); err != nil {
		return operation.Supplier{}, err
	}
	if err := uc.check(name, input); err != nil {
		return operation.Supplier{}, err
	}

	s, err := call(ctx, uc, name, MsgCreateSupplierFailed, func(ctx context.Context) (operation.Supplier, error) {
		return uc.repo.CreateSupplier(ctx, repo.CreateSupplierOptions{
			TenantID: sc.TenantID,
			Name:     input.Name,
			Document: input.Document,
			Email:    input.Email,
			Phone:    input.Phone,
			Category: input.Category,
		})
	})
	if err != nil {
		return operation.Supplier{}, err
	}
	if err := ensureOwned(ctx, uc, name, sc.TenantID, []operation.Supplier{s}, supplierTenant); err != nil {
		return operation.Supplier{}, err
	}
	return s, nil
}
