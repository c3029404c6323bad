package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"secure-intent-router/internal/audit"
	"secure-intent-router/internal/cache"
	"secure-intent-router/internal/chat"
	"secure-intent-router/internal/chat/repository"
	"secure-intent-router/internal/delegate"
	"secure-intent-router/internal/intent"
	"secure-intent-router/internal/operation"
	"secure-intent-router/internal/router"
	"secure-intent-router/pkg/log"
)

// Classifier is satisfied by *intent.Classifier.
type Classifier interface {
	Classify(message string) intent.Match
}

// Router is satisfied by *router.Router.
type Router interface {
	Route(message string) router.Assessment
}

// Delegator is satisfied by *delegate.Delegate.
type Delegator interface {
	Interpret(ctx context.Context, message string, opt delegate.Options) (delegate.Decision, error)
}

// Recorder is satisfied by *audit.History.
type Recorder interface {
	Append(ctx context.Context, rec audit.Record) audit.Record
	List(tenantID string, limit int) []audit.Record
}

type implUseCase struct {
	l          log.Logger
	classifier Classifier
	router     Router
	registry   operation.UseCase
	cache      cache.Cache
	history    Recorder
	delegate   Delegator
	settings   repository.SettingsRepository
	validate   *validator.Validate
}

var _ chat.UseCase = (*implUseCase)(nil)

// Deps groups the collaborators of the orchestrator. Delegate may be nil, in which case
// unclassified messages only get a complexity assessment. Settings may be nil, in which
// case every tenant uses the delegate defaults.
type Deps struct {
	Classifier Classifier
	Router     Router
	Registry   operation.UseCase
	Cache      cache.Cache
	History    Recorder
	Delegate   Delegator
	Settings   repository.SettingsRepository
}

func New(l log.Logger, d Deps) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: d.Classifier,
		router:     d.Router,
		registry:   d.Registry,
		cache:      d.Cache,
		history:    d.History,
		delegate:   d.Delegate,
		settings:   d.Settings,
		validate:   newValidator(),
	}
}
