package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"secure-intent-router/internal/chat"
	repo "secure-intent-router/internal/chat/repository"
)

const settingsColumns = `tenant_id::text, COALESCE(preferred_model, ''), temperature, max_tokens, updated_at`

func (r *implRepository) GetSettings(ctx context.Context, opt repo.GetSettingsOptions) (chat.DelegateSettings, error) {
	if opt.TenantID == "" {
		return chat.DelegateSettings{}, repo.ErrMissingTenant
	}

	s, err := scanSettings(r.db.QueryRow(ctx,
		`SELECT `+settingsColumns+` FROM tenant_delegate_settings WHERE tenant_id = $1`, opt.TenantID))
	if errors.Is(err, pgx.ErrNoRows) {
		return chat.DelegateSettings{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSettings"), err)
		return chat.DelegateSettings{}, repo.ErrFailedToGet
	}
	return s, nil
}

// UpsertSettings replaces the tenant's whole configuration in one statement.
func (r *implRepository) UpsertSettings(ctx context.Context, opt repo.UpsertSettingsOptions) (chat.DelegateSettings, error) {
	if opt.TenantID == "" {
		return chat.DelegateSettings{}, repo.ErrMissingTenant
	}

	query := `
		INSERT INTO tenant_delegate_settings (tenant_id, preferred_model, temperature, max_tokens, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, NOW())
		ON CONFLICT (tenant_id) DO UPDATE
		SET preferred_model = EXCLUDED.preferred_model,
			temperature = EXCLUDED.temperature,
			max_tokens = EXCLUDED.max_tokens,
			updated_at = NOW()
		RETURNING ` + settingsColumns

	s, err := scanSettings(r.db.QueryRow(ctx, query, opt.TenantID, opt.PreferredModel, opt.Temperature, opt.MaxTokens))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSettings"), err)
		return chat.DelegateSettings{}, repo.ErrFailedToUpsert
	}
	return s, nil
}

func scanSettings(row pgx.Row) (chat.DelegateSettings, error) {
	var s chat.DelegateSettings
	err := row.Scan(&s.TenantID, &s.PreferredModel, &s.Temperature, &s.MaxTokens, &s.UpdatedAt)
	return s, err
}
