package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"secure-intent-router/internal/operation"
	repo "secure-intent-router/internal/operation/repository"
)

// ListProjects returns the tenant's projects, newest first.
func (r *implRepository) ListProjects(ctx context.Context, opt repo.ListProjectsOptions) ([]operation.Project, error) {
	if opt.TenantID == "" {
		return nil, repo.ErrMissingTenant
	}

	mods, args := r.buildListProjectsQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM projects %s`, projectColumns, mods)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	projects := []operation.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListProjects"), err)
			return nil, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListProjects"), err)
		return nil, repo.ErrFailedToList
	}
	return projects, nil
}

// CreateProject inserts a project stamped with the caller's tenant.
func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (operation.Project, error) {
	if opt.TenantID == "" {
		return operation.Project{}, repo.ErrMissingTenant
	}

	query := fmt.Sprintf(`
		INSERT INTO projects (tenant_id, name, owner, client, status, start_date, end_date,
			address, building_size, land_size, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), NOW(), NOW())
		RETURNING %s`, projectColumns)

	p, err := scanProject(r.db.QueryRow(ctx, query,
		opt.TenantID, opt.Name, opt.Owner, opt.Client, opt.Status, opt.StartDate, opt.EndDate,
		opt.Address, opt.BuildingSize, opt.LandSize,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return operation.Project{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// UpdateProjectStatus changes the status of a project matched by id AND tenant.
// Returns zero-value Project when nothing matched.
func (r *implRepository) UpdateProjectStatus(ctx context.Context, opt repo.UpdateProjectStatusOptions) (operation.Project, error) {
	if opt.TenantID == "" {
		return operation.Project{}, repo.ErrMissingTenant
	}

	query := fmt.Sprintf(`
		UPDATE projects
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3
		RETURNING %s`, projectColumns)

	p, err := scanProject(r.db.QueryRow(ctx, query, opt.Status, opt.ProjectID, opt.TenantID))
	if errors.Is(err, pgx.ErrNoRows) {
		return operation.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProjectStatus"), err)
		return operation.Project{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

func scanProject(row pgx.Row) (operation.Project, error) {
	var p operation.Project
	var status string
	err := row.Scan(
		&p.ID, &p.TenantID, &p.Name, &p.Owner, &p.Client, &status,
		&p.StartDate, &p.EndDate, &p.Address, &p.BuildingSize, &p.LandSize,
		&p.CreatedAt, &p.UpdatedAt,
	)
	p.Status = operation.ProjectStatus(status)
	return p, err
}
