package repository

import (
	"context"

	"secure-intent-router/internal/chat"
)

// SettingsRepository stores the per-tenant delegate configuration.
type SettingsRepository interface {
	// GetSettings returns a zero-value DelegateSettings (TenantID == "") when the tenant has none.
	GetSettings(ctx context.Context, opt GetSettingsOptions) (chat.DelegateSettings, error)
	UpsertSettings(ctx context.Context, opt UpsertSettingsOptions) (chat.DelegateSettings, error)
}
