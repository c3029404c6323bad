package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates every provider in the chain failed.
	ErrAllProvidersFailed = errors.New("all providers failed")
	// ErrNoProvidersConfigured indicates no provider is enabled.
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrProviderTimeout       = errors.New("provider timeout")
	ErrProviderRateLimited   = errors.New("provider rate limited")
	ErrEmptyResponse         = errors.New("empty response")
)

// ProviderError wraps a provider-specific error.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
