package postgre

import (
	"fmt"
	"strings"

	repo "secure-intent-router/internal/operation/repository"
)

const projectColumns = `id::text, tenant_id::text, name, owner, COALESCE(client, ''), status,
	start_date, end_date, COALESCE(address, ''), COALESCE(building_size, ''), COALESCE(land_size, ''),
	created_at, updated_at`

const supplierColumns = `id::text, tenant_id::text, name, COALESCE(document, ''), COALESCE(email, ''),
	COALESCE(phone, ''), COALESCE(category, ''), active, created_at`

// buildListProjectsQuery builds WHERE + ORDER + LIMIT for ListProjects.
// The tenant condition is always first.
func (r *implRepository) buildListProjectsQuery(opt repo.ListProjectsOptions) (string, []any) {
	conditions := []string{"tenant_id = $1"}
	args := []any{opt.TenantID}
	idx := 2

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}

	parts := []string{
		"WHERE " + strings.Join(conditions, " AND "),
		"ORDER BY created_at DESC",
	}
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}
	return strings.Join(parts, " "), args
}

// buildSumCostsQuery builds the WHERE clause for SumProjectCosts.
func (r *implRepository) buildSumCostsQuery(opt repo.SumProjectCostsOptions) (string, []any) {
	conditions := []string{"p.tenant_id = $1", "c.tenant_id = $1"}
	args := []any{opt.TenantID}

	if opt.ProjectID != "" {
		conditions = append(conditions, "p.id = $2")
		args = append(args, opt.ProjectID)
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
