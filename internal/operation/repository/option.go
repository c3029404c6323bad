package repository

import "time"

// Every option struct carries TenantID. Implementations must reject an empty one
// and apply it as a filter (reads, updates) or stamp it on the row (inserts).

// ListProjectsOptions filters projects of one tenant. Empty Status means all statuses.
type ListProjectsOptions struct {
	TenantID string
	Status   string
	Limit    int
}

// CreateProjectOptions holds an already validated project.
type CreateProjectOptions struct {
	TenantID     string
	Name         string
	Owner        string
	Client       string
	Status       string
	StartDate    *time.Time
	EndDate      *time.Time
	Address      string
	BuildingSize string
	LandSize     string
}

// UpdateProjectStatusOptions matches on ProjectID AND TenantID in the same statement.
type UpdateProjectStatusOptions struct {
	TenantID  string
	ProjectID string
	Status    string
}

// ListSuppliersOptions filters suppliers of one tenant.
type ListSuppliersOptions struct {
	TenantID   string
	ActiveOnly bool
}

// CreateSupplierOptions holds an already validated supplier.
type CreateSupplierOptions struct {
	TenantID string
	Name     string
	Document string
	Email    string
	Phone    string
	Category string
}

// SumProjectCostsOptions aggregates cost entries of one tenant, optionally for one project.
type SumProjectCostsOptions struct {
	TenantID  string
	ProjectID string
}
