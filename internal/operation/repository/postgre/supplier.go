package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"secure-intent-router/internal/operation"
	repo "secure-intent-router/internal/operation/repository"
)

// ListSuppliers returns the tenant's suppliers ordered by name.
func (r *implRepository) ListSuppliers(ctx context.Context, opt repo.ListSuppliersOptions) ([]operation.Supplier, error) {
	if opt.TenantID == "" {
		return nil, repo.ErrMissingTenant
	}

	query := fmt.Sprintf(`SELECT %s FROM suppliers WHERE tenant_id = $1`, supplierColumns)
	if opt.ActiveOnly {
		query += ` AND active`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, opt.TenantID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSuppliers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	suppliers := []operation.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSuppliers"), err)
			return nil, repo.ErrFailedToList
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSuppliers"), err)
		return nil, repo.ErrFailedToList
	}
	return suppliers, nil
}

// CreateSupplier inserts a supplier stamped with the caller's tenant.
func (r *implRepository) CreateSupplier(ctx context.Context, opt repo.CreateSupplierOptions) (operation.Supplier, error) {
	if opt.TenantID == "" {
		return operation.Supplier{}, repo.ErrMissingTenant
	}

	query := fmt.Sprintf(`
		INSERT INTO suppliers (tenant_id, name, document, email, phone, category, active, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), TRUE, NOW())
		RETURNING %s`, supplierColumns)

	s, err := scanSupplier(r.db.QueryRow(ctx, query,
		opt.TenantID, opt.Name, opt.Document, opt.Email, opt.Phone, opt.Category,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSupplier"), err)
		return operation.Supplier{}, repo.ErrFailedToInsert
	}
	return s, nil
}

func scanSupplier(row pgx.Row) (operation.Supplier, error) {
	var s operation.Supplier
	err := row.Scan(&s.ID, &s.TenantID, &s.Name, &s.Document, &s.Email, &s.Phone, &s.Category, &s.Active, &s.CreatedAt)
	return s, err
}
