package repository

type GetSettingsOptions struct {
	TenantID string
}

// UpsertSettingsOptions holds already validated values. Empty PreferredModel clears the override.
type UpsertSettingsOptions struct {
	TenantID       string
	PreferredModel string
	Temperature    float64
	MaxTokens      int
}
