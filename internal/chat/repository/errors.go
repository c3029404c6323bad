package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get settings")
	ErrFailedToUpsert = errors.New("failed to save settings")
	ErrMissingTenant  = errors.New("tenant filter is required")
)
