package postgre

import (
	"context"
	"fmt"

	"secure-intent-router/internal/operation"
	repo "secure-intent-router/internal/operation/repository"
)

// SumProjectCosts totals cost entries per project for one tenant.
func (r *implRepository) SumProjectCosts(ctx context.Context, opt repo.SumProjectCostsOptions) ([]operation.ProjectCost, error) {
	if opt.TenantID == "" {
		return nil, repo.ErrMissingTenant
	}

	where, args := r.buildSumCostsQuery(opt)
	query := fmt.Sprintf(`
		SELECT p.tenant_id::text, p.id::text, p.name, COALESCE(SUM(c.amount), 0)::float8, COUNT(c.id)
		FROM projects p
		JOIN cost_entries c ON c.project_id = p.id
		%s
		GROUP BY p.tenant_id, p.id, p.name
		ORDER BY 4 DESC`, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SumProjectCosts"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	costs := []operation.ProjectCost{}
	for rows.Next() {
		var c operation.ProjectCost
		if err := rows.Scan(&c.TenantID, &c.ProjectID, &c.ProjectName, &c.Total, &c.Entries); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("SumProjectCosts"), err)
			return nil, repo.ErrFailedToList
		}
		costs = append(costs, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("SumProjectCosts"), err)
		return nil, repo.ErrFailedToList
	}
	return costs, nil
}
