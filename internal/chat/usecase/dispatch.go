package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"secure-intent-router/internal/audit"
	"secure-intent-router/internal/chat"
	"secure-intent-router/internal/delegate"
	"secure-intent-router/internal/model"
	"secure-intent-router/internal/operation"
)

// Dispatch classifies the message and either runs the matched operation or hands the
// message to the complexity router and, when configured, the external model.
func (uc *implUseCase) Dispatch(ctx context.Context, sc model.Scope, input chat.DispatchInput) (chat.DispatchOutput, error) {
	msg, err := normalize(input.Message)
	if err != nil {
		return chat.DispatchOutput{}, err
	}
	if !sc.Valid() {
		return chat.DispatchOutput{}, operation.ErrMissingTenant
	}

	match := uc.classifier.Classify(msg)
	if match.Matched {
		out, err := uc.runOperation(ctx, sc, msg, match.Operation, input.Params)
		out.Path = chat.PathClassified
		return out, err
	}
	return uc.delegateMessage(ctx, sc, msg)
}

// runOperation is the classified branch: cache lookup, registry call, cache write or
// tenant invalidation, and the audit record.
func (uc *implUseCase) runOperation(ctx context.Context, sc model.Scope, msg string, name operation.Name, params map[string]any) (chat.DispatchOutput, error) {
	def, ok := operation.Lookup(name)
	if !ok {
		uc.record(ctx, sc, msg, name, false, false, operation.ErrUnknownOperation)
		return chat.DispatchOutput{Operation: name, Response: TextUnknownOperation}, operation.ErrUnknownOperation
	}

	if def.Cacheable {
		lookup := uc.cache.Get(ctx, string(name), sc.TenantID, params)
		if lookup.Hit() {
			data, err := uc.registry.DecodeResult(name, lookup.Value)
			if err == nil {
				uc.record(ctx, sc, msg, name, true, true, nil)
				return chat.DispatchOutput{
					Response:  formatResult(name, data),
					Operation: name,
					Data:      data,
					FromCache: true,
					Success:   true,
				}, nil
			}
			uc.l.Warnf(ctx, "%s: undecodable entry %s: %v", LogPrefixCache, lookup.Key, err)
		}
	}

	// The registry call and everything after it outlive a cancelled caller so the audit
	// trail matches what storage saw.
	detached := context.WithoutCancel(ctx)

	data, err := uc.registry.Execute(detached, sc, name, params)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %s failed for tenant %s: %v", LogPrefixDispatch, name, sc.TenantID, err)
		uc.record(detached, sc, msg, name, false, false, err)
		return chat.DispatchOutput{
			Response:  failureText(err),
			Operation: name,
			Success:   false,
		}, err
	}

	switch {
	case def.Kind == operation.KindRead && def.Cacheable:
		if def.TTL > 0 {
			uc.cache.SetWithTTL(detached, string(name), sc.TenantID, data, params, def.TTL)
		} else {
			uc.cache.Set(detached, string(name), sc.TenantID, data, params)
		}
	case def.Kind == operation.KindWrite:
		n := uc.cache.InvalidateTenant(detached, sc.TenantID)
		uc.l.Debugf(ctx, "%s: %s invalidated %d entries", LogPrefixCache, name, n)
	}

	uc.record(detached, sc, msg, name, true, false, nil)
	return chat.DispatchOutput{
		Response:  formatResult(name, data),
		Operation: name,
		Data:      data,
		Success:   true,
	}, nil
}

// delegateMessage is the unclassified branch. The assessment is always part of the output.
func (uc *implUseCase) delegateMessage(ctx context.Context, sc model.Scope, msg string) (chat.DispatchOutput, error) {
	assessment := uc.router.Route(msg)
	out := chat.DispatchOutput{
		Assessment: &assessment,
		Model:      assessment.Model,
		Success:    true,
	}

	if !assessment.NeedsExternalModel {
		out.Path = chat.PathDirect
		out.Response = TextDirectQuery
		return out, nil
	}
	if uc.delegate == nil {
		out.Path = chat.PathDelegated
		out.Response = TextNoOperation
		return out, nil
	}

	decision, err := uc.delegate.Interpret(ctx, msg, uc.delegateOptions(ctx, sc, assessment.Model))
	if decision.Model != "" {
		out.Model = decision.Model
	}
	if err != nil {
		if errors.Is(err, delegate.ErrUnknownOperationFromDelegate) {
			uc.record(ctx, sc, msg, "", false, false, err)
			out.Path = chat.PathDelegated
			out.Success = false
			out.Response = TextUnknownOperation
			return out, err
		}
		uc.l.Warnf(ctx, "%s: %v", LogPrefixDelegate, err)
		out.Path = chat.PathDelegated
		out.Success = false
		out.Response = TextDelegateDown
		return out, nil
	}

	if !decision.HasOperation() {
		out.Path = chat.PathAnswered
		out.Response = decision.Answer
		return out, nil
	}

	opOut, err := uc.runOperation(ctx, sc, msg, decision.Operation, decision.Params)
	opOut.Path = chat.PathDelegated
	opOut.Assessment = out.Assessment
	opOut.Model = out.Model
	return opOut, err
}

func (uc *implUseCase) record(ctx context.Context, sc model.Scope, msg string, name operation.Name, success, fromCache bool, err error) {
	uc.history.Append(ctx, audit.Record{
		TenantID:  sc.TenantID,
		Operation: string(name),
		Message:   msg,
		Success:   success,
		FromCache: fromCache,
		ErrorKind: errorKind(err),
	})
}

func normalize(message string) (string, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return "", chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return "", chat.ErrMessageTooLong
	}
	return msg, nil
}

func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, operation.ErrValidation):
		return audit.KindValidation
	case errors.Is(err, operation.ErrTenantMismatch):
		return audit.KindTenantMismatch
	case errors.Is(err, operation.ErrUnknownOperation):
		return audit.KindUnknownOperation
	case errors.Is(err, delegate.ErrUnknownOperationFromDelegate):
		return audit.KindDelegateUnknown
	case errors.Is(err, delegate.ErrDelegateFailed):
		return audit.KindDelegateFailure
	default:
		return audit.KindOperationFailure
	}
}
