package operation

import "time"

// Name identifies a whitelisted operation.
type Name string

const (
	GetActiveProjects   Name = "get_active_projects"
	ListProjects        Name = "list_projects"
	GetFinishedProjects Name = "get_finished_projects"
	GetProjectCosts     Name = "get_project_costs"
	ListSuppliers       Name = "list_suppliers"
	CreateProject       Name = "create_project"
	CreateSupplier      Name = "create_supplier"
	UpdateProjectStatus Name = "update_project_status"
)

// Kind separates operations that only read from those that write.
type Kind string

const (
	KindRead  Kind = "read"
	KindWrite Kind = "write"
)

// ProjectStatus is the lifecycle state of a Project.
type ProjectStatus string

const (
	StatusInProgress ProjectStatus = "Em andamento"
	StatusPaused     ProjectStatus = "Paralisada"
	StatusFinished   ProjectStatus = "Finalizada"
)

// ValidStatus reports whether s is one of the three project statuses.
func ValidStatus(s string) bool {
	switch ProjectStatus(s) {
	case StatusInProgress, StatusPaused, StatusFinished:
		return true
	}
	return false
}

// --- Domain entities ---

// Project is a construction project ("obra") owned by a single tenant.
type Project struct {
	ID           string        `json:"id"`
	TenantID     string        `json:"tenant_id"`
	Name         string        `json:"name"`
	Owner        string        `json:"owner"`
	Client       string        `json:"client,omitempty"`
	Status       ProjectStatus `json:"status"`
	StartDate    *time.Time    `json:"start_date,omitempty"`
	EndDate      *time.Time    `json:"end_date,omitempty"`
	Address      string        `json:"address,omitempty"`
	BuildingSize string        `json:"building_size,omitempty"`
	LandSize     string        `json:"land_size,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Supplier is a vendor registered by a tenant.
type Supplier struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Category  string    `json:"category,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectCost is the sum of the cost entries booked against one project.
type ProjectCost struct {
	TenantID    string  `json:"tenant_id"`
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	Total       float64 `json:"total"`
	Entries     int     `json:"entries"`
}

// --- UseCase inputs ---
// Field names double as the parameter names accepted from callers and the delegate.

type CreateProjectInput struct {
	Name         string `json:"name" mapstructure:"name" validate:"required,min=1,max=255"`
	Owner        string `json:"owner" mapstructure:"owner" validate:"required,min=1,max=255"`
	Client       string `json:"client" mapstructure:"client" validate:"max=255"`
	Status       string `json:"status" mapstructure:"status" validate:"omitempty,project_status"`
	StartDate    string `json:"start_date" mapstructure:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `json:"end_date" mapstructure:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Address      string `json:"address" mapstructure:"address" validate:"max=500"`
	BuildingSize string `json:"building_size" mapstructure:"building_size" validate:"max=100"`
	LandSize     string `json:"land_size" mapstructure:"land_size" validate:"max=100"`
}

type UpdateProjectStatusInput struct {
	ProjectID string `json:"project_id" mapstructure:"project_id" validate:"required,uuid"`
	Status    string `json:"status" mapstructure:"status" validate:"required,project_status"`
}

type ProjectCostsInput struct {
	ProjectID string `json:"project_id" mapstructure:"project_id" validate:"omitempty,uuid"`
}

type CreateSupplierInput struct {
	Name     string `json:"name" mapstructure:"name" validate:"required,min=1,max=255"`
	Document string `json:"document" mapstructure:"document" validate:"max=32"`
	Email    string `json:"email" mapstructure:"email" validate:"omitempty,email,max=255"`
	Phone    string `json:"phone" mapstructure:"phone" validate:"max=32"`
	Category string `json:"category" mapstructure:"category" validate:"max=100"`
}
