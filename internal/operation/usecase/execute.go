package usecase

import (
	"context"

	"secure-intent-router/internal/model"
	"secure-intent-router/internal/operation"
)

// Execute decodes params for name and dispatches to the matching registry method.
// Names outside the catalog are rejected with ErrUnknownOperation.
func (uc *implUseCase) Execute(ctx context.Context, sc model.Scope, name operation.Name, params map[string]any) (any, error) {
	switch name {
	case operation.GetActiveProjects, operation.ListProjects, operation.GetFinishedProjects, operation.ListSuppliers:
		if _, err := decodeParams[struct{}](name, params); err != nil {
			return nil, err
		}
		switch name {
		case operation.GetActiveProjects:
			return uc.GetActiveProjects(ctx, sc)
		case operation.ListProjects:
			return uc.ListProjects(ctx, sc)
		case operation.GetFinishedProjects:
			return uc.GetFinishedProjects(ctx, sc)
		default:
			return uc.ListSuppliers(ctx, sc)
		}

	case operation.GetProjectCosts:
		input, err := decodeParams[operation.ProjectCostsInput](name, params)
		if err != nil {
			return nil, err
		}
		return uc.GetProjectCosts(ctx, sc, input)

	case operation.CreateProject:
		input, err := decodeParams[operation.CreateProjectInput](name, params)
		if err != nil {
			return nil, err
		}
		return uc.CreateProject(ctx, sc, input)

	case operation.CreateSupplier:
		input, err := decodeParams[operation.CreateSupplierInput](name, params)
		if err != nil {
			return nil, err
		}
		return uc.CreateSupplier(ctx, sc, input)

	case operation.UpdateProjectStatus:
		input, err := decodeParams[operation.UpdateProjectStatusInput](name, params)
		if err != nil {
			return nil, err
		}
		return uc.UpdateProjectStatus(ctx, sc, input)
	}

	uc.l.Warnf(ctx, "%s: rejected unknown operation %q", LogPrefixExecute, name)
	return nil, operation.ErrUnknownOperation
}

// DecodeResult rebuilds the typed result of name from JSON, e.g. a cached value.
func (uc *implUseCase) DecodeResult(name operation.Name, raw []byte) (any, error) {
	switch name {
	case operation.GetActiveProjects, operation.ListProjects, operation.GetFinishedProjects:
		return unmarshal[[]operation.Project](raw)
	case operation.GetProjectCosts:
		return unmarshal[[]operation.ProjectCost](raw)
	case operation.ListSuppliers:
		return unmarshal[[]operation.Supplier](raw)
	case operation.CreateProject, operation.UpdateProjectStatus:
		return unmarshal[operation.Project](raw)
	case operation.CreateSupplier:
		return unmarshal[operation.Supplier](raw)
	}
	return nil, operation.ErrUnknownOperation
}
