package operation

import (
	"context"

	"secure-intent-router/internal/model"
)

// UseCase is the Secure Operation Registry: one method per whitelisted operation.
// Every method scopes its storage access to sc.TenantID.
//
//go:generate mockery --name UseCase
type UseCase interface {
	GetActiveProjects(ctx context.Context, sc model.Scope) ([]Project, error)
	ListProjects(ctx context.Context, sc model.Scope) ([]Project, error)
	GetFinishedProjects(ctx context.Context, sc model.Scope) ([]Project, error)
	GetProjectsByStatus(ctx context.Context, sc model.Scope, status string) ([]Project, error)
	GetProjectCosts(ctx context.Context, sc model.Scope, input ProjectCostsInput) ([]ProjectCost, error)
	ListSuppliers(ctx context.Context, sc model.Scope) ([]Supplier, error)
	CreateProject(ctx context.Context, sc model.Scope, input CreateProjectInput) (Project, error)
	CreateSupplier(ctx context.Context, sc model.Scope, input CreateSupplierInput) (Supplier, error)
	UpdateProjectStatus(ctx context.Context, sc model.Scope, input UpdateProjectStatusInput) (Project, error)

	// Execute decodes params into the typed input of name and calls the matching method.
	Execute(ctx context.Context, sc model.Scope, name Name, params map[string]any) (any, error)

	// DecodeResult rebuilds the typed result of name from its JSON form.
	DecodeResult(name Name, raw []byte) (any, error)
}
