package usecase

import (
	"context"

	"secure-intent-router/internal/model"
	"secure-intent-router/internal/operation"
	repo "secure-intent-router/internal/operation/repository"
)

// GetActiveProjects lists the tenant's projects in progress.
func (uc *implUseCase) GetActiveProjects(ctx context.Context, sc model.Scope) ([]operation.Project, error) {
	return uc.projectsByStatus(ctx, sc, operation.GetActiveProjects, string(operation.StatusInProgress))
}

// ListProjects lists every project of the tenant.
func (uc *implUseCase) ListProjects(ctx context.Context, sc model.Scope) ([]operation.Project, error) {
	return uc.listProjects(ctx, sc, operation.ListProjects, "")
}

// GetFinishedProjects lists the tenant's finished projects.
func (uc *implUseCase) GetFinishedProjects(ctx context.Context, sc model.Scope) ([]operation.Project, error) {
	return uc.projectsByStatus(ctx, sc, operation.GetFinishedProjects, string(operation.StatusFinished))
}

// GetProjectsByStatus lists the tenant's projects with the given status. The status
// operations above are this call with a fixed status.
func (uc *implUseCase) GetProjectsByStatus(ctx context.Context, sc model.Scope, status string) ([]operation.Project, error) {
	return uc.projectsByStatus(ctx, sc, operation.ListProjects, status)
}

// projectsByStatus validates status and labels failures with name, the operation the caller asked for.
func (uc *implUseCase) projectsByStatus(ctx context.Context, sc model.Scope, name operation.Name, status string) ([]operation.Project, error) {
	if err := checkStatus(name, status); err != nil {
		return nil, err
	}
	return uc.listProjects(ctx, sc, name, status)
}

func (uc *implUseCase) listProjects(ctx context.Context, sc model.Scope, name operation.Name, status string) ([]operation.Project, error) {
	if err := checkScope(sc.TenantID); err != nil {
		return nil, err
	}

	projects, err := call(ctx, uc, name, MsgListProjectsFailed, func(ctx context.Context) ([]operation.Project, error) {
		return uc.repo.ListProjects(ctx, repo.ListProjectsOptions{TenantID: sc.TenantID, Status: status})
	})
	if err != nil {
		return nil, err
	}
	if err := ensureOwned(ctx, uc, name, sc.TenantID, projects, projectTenant); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject validates input and inserts a project owned by the tenant.
func (uc *implUseCase) CreateProject(ctx context.Context, sc model.Scope, input operation.CreateProjectInput) (operation.Project, error) {
	const name = operation.CreateProject
	if err := checkScope(sc.TenantID); err != nil {
		return operation.Project{}, err
	}
	if err := uc.check(name, input); err != nil {
		return operation.Project{}, err
	}

	start, end := parseDate(input.StartDate), parseDate(input.EndDate)
	if start != nil && end != nil && end.Before(*start) {
		return operation.Project{}, &operation.ValidationError{Operation: name, Field: "end_date", Reason: ReasonEndBeforeStart}
	}
	status := input.Status
	if status == "" {
		status = string(operation.StatusInProgress)
	}

	p, err := call(ctx, uc, name, MsgCreateProjectFailed, func(ctx context.Context) (operation.Project, error) {
		return uc.repo.CreateProject(ctx, repo.CreateProjectOptions{
			TenantID:     sc.TenantID,
			Name:         input.Name,
			Owner:        input.Owner,
			Client:       input.Client,
			Status:       status,
			StartDate:    start,
			EndDate:      end,
			Address:      input.Address,
			BuildingSize: input.BuildingSize,
			LandSize:     input.LandSize,
		})
	})
	if err != nil {
		return operation.Project{}, err
	}
	if err := ensureOwned(ctx, uc, name, sc.TenantID, []operation.Project{p}, projectTenant); err != nil {
		return operation.Project{}, err
	}
	return p, nil
}

// UpdateProjectStatus changes the status of one of the tenant's projects.
// A project id that does not belong to the tenant yields ErrTenantMismatch and nothing is written.
func (uc *implUseCase) UpdateProjectStatus(ctx context.Context, sc model.Scope, input operation.UpdateProjectStatusInput) (operation.Project, error) {
	const name = operation.UpdateProjectStatus
	if err := checkScope(sc.TenantID); err != nil {
		return operation.Project{}, err
	}
	if err := uc.check(name, input); err != nil {
		return operation.Project{}, err
	}

	p, err := call(ctx, uc, name, MsgUpdateStatusFailed, func(ctx context.Context) (operation.Project, error) {
		return uc.repo.UpdateProjectStatus(ctx, repo.UpdateProjectStatusOptions{
			TenantID:  sc.TenantID,
			ProjectID: input.ProjectID,
			Status:    input.Status,
		})
	})
	if err != nil {
		return operation.Project{}, err
	}
	if p.ID == "" {
		return operation.Project{}, operation.ErrTenantMismatch
	}
	if err := ensureOwned(ctx, uc, name, sc.TenantID, []operation.Project{p}, projectTenant); err != nil {
		return operation.Project{}, err
	}
	return p, nil
}
