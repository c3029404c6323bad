package model

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidTenant is returned when a scope carries no usable tenant id.
var ErrInvalidTenant = errors.New("invalid tenant id")

// Scope identifies the caller of a request. Every cache key, registry call and
// audit record is derived from exactly one Scope.
type Scope struct {
	TenantID string // identity provider subject (UUID)
	Email    string
}

// NewScope validates tenantID and returns a Scope for it.
func NewScope(tenantID, email string) (Scope, error) {
	if _, err := uuid.Parse(tenantID); err != nil {
		return Scope{}, ErrInvalidTenant
	}
	return Scope{TenantID: tenantID, Email: email}, nil
}

// Valid reports whether the scope carries a tenant id.
func (s Scope) Valid() bool {
	return s.TenantID != ""
}
