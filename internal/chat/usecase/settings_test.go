package usecase_test

import (
	"context"
	"errors"
	"testing"

	"secure-intent-router/internal/audit"
	"secure-intent-router/internal/cache"
	"secure-intent-router/internal/cache/memory"
	"secure-intent-router/internal/chat"
	chatRepo "secure-intent-router/internal/chat/repository"
	"secure-intent-router/internal/chat/usecase"
	"secure-intent-router/internal/delegate"
	"secure-intent-router/internal/intent"
	"secure-intent-router/internal/operation"
	opusecase "secure-intent-router/internal/operation/usecase"
	"secure-intent-router/internal/router"
	"secure-intent-router/pkg/log"
)

type fakeSettings struct {
	stored   map[string]chat.DelegateSettings
	getErr   error
	upserts  int
	lastOpts chatRepo.UpsertSettingsOptions
}

func (f *fakeSettings) GetSettings(ctx context.Context, opt chatRepo.GetSettingsOptions) (chat.DelegateSettings, error) {
	if f.getErr != nil {
		return chat.DelegateSettings{}, f.getErr
	}
	return f.stored[opt.TenantID], nil
}

func (f *fakeSettings) UpsertSettings(ctx context.Context, opt chatRepo.UpsertSettingsOptions) (chat.DelegateSettings, error) {
	f.upserts++
	f.lastOpts = opt
	s := chat.DelegateSettings{
		TenantID:       opt.TenantID,
		PreferredModel: opt.PreferredModel,
		Temperature:    opt.Temperature,
		MaxTokens:      opt.MaxTokens,
	}
	if f.stored == nil {
		f.stored = map[string]chat.DelegateSettings{}
	}
	f.stored[opt.TenantID] = s
	return s, nil
}

func newSettingsUseCase(settings chatRepo.SettingsRepository, dlg usecase.Delegator) chat.UseCase {
	l := log.NewNop()
	deps := usecase.Deps{
		Classifier: intent.New(),
		Router:     router.New(router.Config{}),
		Registry:   opusecase.New(&countingRepo{}, l, opusecase.Options{}),
		Cache:      cache.New(memory.New(memory.Options{}), l, cache.Options{}),
		History:    audit.NewHistory(10, nil, l),
		Delegate:   dlg,
		Settings:   settings,
	}
	return usecase.New(l, deps)
}

func ptr(f float64) *float64 { return &f }

func TestSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults without a store", func(t *testing.T) {
		uc := newSettingsUseCase(nil, nil)
		s, err := uc.Settings(ctx, scope(tenantA))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TenantID != tenantA || s.Temperature != delegate.Temperature || s.MaxTokens != delegate.MaxTokens || s.PreferredModel != "" {
			t.Errorf("unexpected defaults %+v", s)
		}
	})

	t.Run("defaults when the tenant has no row", func(t *testing.T) {
		uc := newSettingsUseCase(&fakeSettings{}, nil)
		s, err := uc.Settings(ctx, scope(tenantB))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TenantID != tenantB || s.MaxTokens != delegate.MaxTokens {
			t.Errorf("unexpected defaults %+v", s)
		}
	})

	t.Run("stored row is returned per tenant", func(t *testing.T) {
		store := &fakeSettings{stored: map[string]chat.DelegateSettings{
			tenantA: {TenantID: tenantA, PreferredModel: "openai/gpt-4o", Temperature: 0.5, MaxTokens: 500},
		}}
		uc := newSettingsUseCase(store, nil)

		a, _ := uc.Settings(ctx, scope(tenantA))
		b, _ := uc.Settings(ctx, scope(tenantB))
		if a.PreferredModel != "openai/gpt-4o" || a.MaxTokens != 500 {
			t.Errorf("unexpected settings for tenant A: %+v", a)
		}
		if b.PreferredModel != "" || b.MaxTokens != delegate.MaxTokens {
			t.Errorf("tenant B must not see tenant A's settings: %+v", b)
		}
	})

	t.Run("missing tenant", func(t *testing.T) {
		uc := newSettingsUseCase(&fakeSettings{}, nil)
		if _, err := uc.Settings(ctx, scope("")); !errors.Is(err, operation.ErrMissingTenant) {
			t.Errorf("expected ErrMissingTenant, got %v", err)
		}
	})
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("valid input is stored for the caller", func(t *testing.T) {
		store := &fakeSettings{}
		uc := newSettingsUseCase(store, nil)

		s, err := uc.UpdateSettings(ctx, scope(tenantA), chat.UpdateSettingsInput{
			PreferredModel: "anthropic/claude-3-haiku", Temperature: ptr(0), MaxTokens: 250,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TenantID != tenantA || s.Temperature != 0 || s.MaxTokens != 250 {
			t.Errorf("unexpected result %+v", s)
		}
		if store.lastOpts.TenantID != tenantA {
			t.Errorf("expected the scope tenant, got %q", store.lastOpts.TenantID)
		}
	})

	invalid := []struct {
		name  string
		in    chat.UpdateSettingsInput
		field string
	}{
		{"temperature missing", chat.UpdateSettingsInput{MaxTokens: 100}, "temperature"},
		{"temperature too high", chat.UpdateSettingsInput{Temperature: ptr(2.5), MaxTokens: 100}, "temperature"},
		{"negative temperature", chat.UpdateSettingsInput{Temperature: ptr(-0.1), MaxTokens: 100}, "temperature"},
		{"max tokens missing", chat.UpdateSettingsInput{Temperature: ptr(0.3)}, "max_tokens"},
		{"max tokens too high", chat.UpdateSettingsInput{Temperature: ptr(0.3), MaxTokens: 5000}, "max_tokens"},
		{"model with control chars", chat.UpdateSettingsInput{PreferredModel: "gpt\n4", Temperature: ptr(0.3), MaxTokens: 100}, "preferred_model"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeSettings{}
			uc := newSettingsUseCase(store, nil)

			_, err := uc.UpdateSettings(ctx, scope(tenantA), tt.in)
			if !errors.Is(err, chat.ErrInvalidSettings) {
				t.Fatalf("expected ErrInvalidSettings, got %v", err)
			}
			var se *chat.SettingsError
			if !errors.As(err, &se) || se.Field != tt.field {
				t.Errorf("expected field %q, got %v", tt.field, err)
			}
			if store.upserts != 0 {
				t.Errorf("invalid input must not be stored")
			}
		})
	}

	t.Run("no store", func(t *testing.T) {
		uc := newSettingsUseCase(nil, nil)
		_, err := uc.UpdateSettings(ctx, scope(tenantA), chat.UpdateSettingsInput{Temperature: ptr(0.3), MaxTokens: 100})
		if !errors.Is(err, chat.ErrSettingsUnavailable) {
			t.Errorf("expected ErrSettingsUnavailable, got %v", err)
		}
	})
}

func TestDispatch_DelegateUsesTenantSettings(t *testing.T) {
	ctx := context.Background()
	answer := delegate.Decision{Answer: "Olá!"}

	t.Run("routed model and defaults", func(t *testing.T) {
		dlg := &fakeDelegate{decision: answer}
		uc := newSettingsUseCase(&fakeSettings{}, dlg)

		if _, err := uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{Message: "bom dia"}); err != nil {
			t.Fatal(err)
		}
		routed := router.New(router.Config{}).Route("bom dia").Model
		if dlg.lastOpt.Model != routed {
			t.Errorf("expected the routed model, got %q", dlg.lastOpt.Model)
		}
		if dlg.lastOpt.Temperature == nil || *dlg.lastOpt.Temperature != delegate.Temperature || dlg.lastOpt.MaxTokens != delegate.MaxTokens {
			t.Errorf("expected default tuning, got %+v", dlg.lastOpt)
		}
	})

	t.Run("tenant overrides", func(t *testing.T) {
		dlg := &fakeDelegate{decision: answer}
		store := &fakeSettings{stored: map[string]chat.DelegateSettings{
			tenantA: {TenantID: tenantA, PreferredModel: "openai/gpt-4o-mini", Temperature: 0, MaxTokens: 200},
		}}
		uc := newSettingsUseCase(store, dlg)

		out, err := uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{Message: "bom dia"})
		if err != nil {
			t.Fatal(err)
		}
		if dlg.lastOpt.Model != "openai/gpt-4o-mini" || out.Model != "openai/gpt-4o-mini" {
			t.Errorf("expected the preferred model, got %q / %q", dlg.lastOpt.Model, out.Model)
		}
		if dlg.lastOpt.Temperature == nil || *dlg.lastOpt.Temperature != 0 || dlg.lastOpt.MaxTokens != 200 {
			t.Errorf("expected tenant tuning, got %+v", dlg.lastOpt)
		}
	})

	t.Run("store failure falls back to defaults", func(t *testing.T) {
		dlg := &fakeDelegate{decision: answer}
		uc := newSettingsUseCase(&fakeSettings{getErr: chatRepo.ErrFailedToGet}, dlg)

		out, err := uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{Message: "bom dia"})
		if err != nil {
			t.Fatal(err)
		}
		if out.Path != chat.PathAnswered || dlg.lastOpt.MaxTokens != delegate.MaxTokens {
			t.Errorf("unexpected output %+v with options %+v", out, dlg.lastOpt)
		}
	})
}
