package operation

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrTenantMismatch   = errors.New("record not found for this tenant")
	ErrOperationFailed  = errors.New("operation failed")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrMissingTenant    = errors.New("tenant is required")
)

// ValidationError is returned when an input does not match an operation's schema.
// It never reaches storage.
type ValidationError struct {
	Operation Name
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Operation, e.Reason)
	}
	return fmt.Sprintf("%s: campo %q %s", e.Operation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// OperationError is the single error kind for storage faults. Message is safe to show
// to users; Cause is kept for logs only.
type OperationError struct {
	Operation Name
	Message   string
	Cause     error
}

func (e *OperationError) Error() string { return e.Message }

func (e *OperationError) Unwrap() error { return ErrOperationFailed }
