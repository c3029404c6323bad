package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"

	"secure-intent-router/internal/operation"
	"secure-intent-router/internal/operation/repository"
	"secure-intent-router/pkg/log"
)

// implUseCase is the private implementation of operation.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	validate *validator.Validate
	timeout  time.Duration
}

var _ operation.UseCase = (*implUseCase)(nil)

// Options configures the registry.
type Options struct {
	// Timeout bounds every storage call. Zero means DefaultTimeout.
	Timeout time.Duration
}

// New creates the Secure Operation Registry.
func New(repo repository.Repository, l log.Logger, opt Options) *implUseCase {
	if opt.Timeout <= 0 {
		opt.Timeout = DefaultTimeout
	}
	return &implUseCase{
		repo:     repo,
		l:        l,
		validate: newValidator(),
		timeout:  opt.Timeout,
	}
}
