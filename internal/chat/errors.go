package chat

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMessage        = errors.New("message is empty")
	ErrMessageTooLong      = errors.New("message is too long")
	ErrInvalidSettings     = errors.New("invalid delegate settings")
	ErrSettingsUnavailable = errors.New("delegate settings store is not configured")
)

// SettingsError names the first field of UpdateSettingsInput that failed validation.
type SettingsError struct {
	Field  string
	Reason string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidSettings, e.Field, e.Reason)
}

func (e *SettingsError) Unwrap() error { return ErrInvalidSettings }
