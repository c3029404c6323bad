package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"secure-intent-router/internal/operation"
)

// call runs fn under the registry timeout. Any error is logged in full and replaced
// with an OperationError carrying only msg.
func call[T any](ctx context.Context, uc *implUseCase, name operation.Name, msg string, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	out, err := fn(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %s: %v", LogPrefixCall, name, err)
		var zero T
		return zero, &operation.OperationError{Operation: name, Message: msg, Cause: err}
	}
	return out, nil
}

// ensureOwned rejects any row that does not belong to tenantID.
func ensureOwned[T any](ctx context.Context, uc *implUseCase, name operation.Name, tenantID string, rows []T, tenantOf func(T) string) error {
	for _, r := range rows {
		if tenantOf(r) != tenantID {
			uc.l.Errorf(ctx, "%s: %s returned a row of another tenant", LogPrefixCall, name)
			return operation.ErrTenantMismatch
		}
	}
	return nil
}

// decodeParams maps loosely typed params onto T. Unknown keys and wrong types are rejected.
func decodeParams[T any](name operation.Name, params map[string]any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &out,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(params); err != nil {
		return out, &operation.ValidationError{Operation: name, Reason: ReasonBadParams}
	}
	return out, nil
}

func unmarshal[T any](raw []byte) (any, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// parseDate parses an already validated YYYY-MM-DD value. Empty means unset.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func projectTenant(p operation.Project) string { return p.TenantID }
func supplierTenant(s operation.Supplier) string { return s.TenantID }
func costTenant(c operation.ProjectCost) string { return c.TenantID }
