package llmprovider

import (
	"context"
	"fmt"
	"time"

	"secure-intent-router/pkg/log"
)

const logPrefixGenerate = "pkg.llmprovider.Manager.GenerateContent"

// Manager tries providers in priority order with per-provider retries and an optional
// global deadline over the whole chain.
type Manager struct {
	providers []Provider
	config    *Config
	l         log.Logger
}

// Config configures a Manager.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxTotalTimeout bounds the whole fallback chain. Zero means no bound beyond ctx.
	MaxTotalTimeout time.Duration
}

func NewManager(providers []Provider, cfg *Config, l log.Logger) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    cfg,
		l:         l,
	}
}

// GenerateContent returns the first successful reply along the provider chain.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: deadline reached after %d provider(s): %v", ErrProviderTimeout, i, err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.l.Infof(ctx, "%s: provider=%s model=%s input_tokens=%d output_tokens=%d",
				logPrefixGenerate, provider.Name(), modelOf(provider, req), tokens(resp, true), tokens(resp, false))
			return resp, nil
		}

		m.l.Warnf(ctx, "%s: provider=%s model=%s failed: %v", logPrefixGenerate, provider.Name(), modelOf(provider, req), err)
		lastErr = err
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry waits attempt*RetryDelay between attempts.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func modelOf(p Provider, req *Request) string {
	if req != nil && req.Model != "" {
		return req.Model
	}
	return p.Model()
}

func tokens(resp *Response, input bool) int {
	if resp == nil || resp.Usage == nil {
		return 0
	}
	if input {
		return resp.Usage.InputTokens
	}
	return resp.Usage.OutputTokens
}
