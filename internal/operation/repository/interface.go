package repository

import (
	"context"

	"secure-intent-router/internal/operation"
)

// Repository is the composed interface for the operation registry's data store.
type Repository interface {
	ProjectRepository
	SupplierRepository
	CostRepository
}

// ProjectRepository defines data access for projects.
type ProjectRepository interface {
	ListProjects(ctx context.Context, opt ListProjectsOptions) ([]operation.Project, error)
	CreateProject(ctx context.Context, opt CreateProjectOptions) (operation.Project, error)
	// UpdateProjectStatus returns a zero-value Project (ID == "") when no row matched id AND tenant.
	UpdateProjectStatus(ctx context.Context, opt UpdateProjectStatusOptions) (operation.Project, error)
}

// SupplierRepository defines data access for suppliers.
type SupplierRepository interface {
	ListSuppliers(ctx context.Context, opt ListSuppliersOptions) ([]operation.Supplier, error)
	CreateSupplier(ctx context.Context, opt CreateSupplierOptions) (operation.Supplier, error)
}

// CostRepository defines data access for cost entries.
type CostRepository interface {
	SumProjectCosts(ctx context.Context, opt SumProjectCostsOptions) ([]operation.ProjectCost, error)
}
