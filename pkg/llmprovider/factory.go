package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"secure-intent-router/config"
	"secure-intent-router/pkg/log"
)

const logPrefixInit = "pkg.llmprovider.InitializeProviders"

// InitializeProviders builds the enabled providers of cfg sorted by priority. A provider that
// fails to initialize is skipped with a warning; only an empty result is an error.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%s: llm config is nil", logPrefixInit)
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var (
		providers []Provider
		failures  []string
	)
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			l.Warnf(ctx, "%s: skipping provider %s (priority %d): %v", logPrefixInit, p.Name, p.Priority, err)
			failures = append(failures, err.Error())
			continue
		}
		providers = append(providers, provider)
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoProvidersConfigured, strings.Join(failures, "; "))
	}
	return providers, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: api key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	switch cfg.Name {
	case "openrouter":
		return NewOpenRouterProvider(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

// ManagerConfig converts the string durations of cfg into a manager Config.
func ManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	var err error
	if out.RetryDelay, err = parseDuration(cfg.RetryDelay); err != nil {
		return nil, fmt.Errorf("llm.retry_delay: %w", err)
	}
	if out.MaxTotalTimeout, err = parseDuration(cfg.MaxTotalTimeout); err != nil {
		return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
	}
	return out, nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
