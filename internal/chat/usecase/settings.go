package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"secure-intent-router/internal/chat"
	"secure-intent-router/internal/chat/repository"
	"secure-intent-router/internal/delegate"
	"secure-intent-router/internal/model"
	"secure-intent-router/internal/operation"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})
	return v
}

func defaultSettings(tenantID string) chat.DelegateSettings {
	return chat.DelegateSettings{
		TenantID:    tenantID,
		Temperature: delegate.Temperature,
		MaxTokens:   delegate.MaxTokens,
	}
}

// Settings returns the stored configuration, falling back to the delegate defaults.
func (uc *implUseCase) Settings(ctx context.Context, sc model.Scope) (chat.DelegateSettings, error) {
	if !sc.Valid() {
		return chat.DelegateSettings{}, operation.ErrMissingTenant
	}
	if uc.settings == nil {
		return defaultSettings(sc.TenantID), nil
	}

	s, err := uc.settings.GetSettings(ctx, repository.GetSettingsOptions{TenantID: sc.TenantID})
	if err != nil {
		return chat.DelegateSettings{}, err
	}
	if s.TenantID == "" {
		return defaultSettings(sc.TenantID), nil
	}
	return s, nil
}

func (uc *implUseCase) UpdateSettings(ctx context.Context, sc model.Scope, input chat.UpdateSettingsInput) (chat.DelegateSettings, error) {
	if !sc.Valid() {
		return chat.DelegateSettings{}, operation.ErrMissingTenant
	}
	if uc.settings == nil {
		return chat.DelegateSettings{}, chat.ErrSettingsUnavailable
	}
	if err := uc.checkSettings(input); err != nil {
		return chat.DelegateSettings{}, err
	}

	s, err := uc.settings.UpsertSettings(ctx, repository.UpsertSettingsOptions{
		TenantID:       sc.TenantID,
		PreferredModel: input.PreferredModel,
		Temperature:    *input.Temperature,
		MaxTokens:      input.MaxTokens,
	})
	if err != nil {
		return chat.DelegateSettings{}, err
	}
	uc.l.Infof(ctx, "%s: tenant %s updated delegate settings", LogPrefixSettings, sc.TenantID)
	return s, nil
}

func (uc *implUseCase) checkSettings(input chat.UpdateSettingsInput) error {
	err := uc.validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return chat.ErrInvalidSettings
	}
	fe := fieldErrs[0]
	return &chat.SettingsError{Field: fe.Field(), Reason: fe.Tag()}
}

// delegateOptions resolves the tenant's tuning for one external call. A store failure
// degrades to the defaults so that the message is still answered.
func (uc *implUseCase) delegateOptions(ctx context.Context, sc model.Scope, routed string) delegate.Options {
	s, err := uc.Settings(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v", LogPrefixSettings, err)
		s = defaultSettings(sc.TenantID)
	}

	opt := delegate.Options{Model: routed, MaxTokens: s.MaxTokens}
	if s.PreferredModel != "" {
		opt.Model = s.PreferredModel
	}
	temp := s.Temperature
	opt.Temperature = &temp
	return opt
}
