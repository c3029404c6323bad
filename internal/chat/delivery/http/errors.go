package http

import (
	"errors"
	"net/http"

	"secure-intent-router/internal/chat"
	"secure-intent-router/internal/delegate"
	"secure-intent-router/internal/operation"
	pkgErrors "secure-intent-router/pkg/errors"
)

var (
	errWrongBody      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errWrongQuery     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong query")
	errEmptyMessage   = pkgErrors.NewHTTPError(http.StatusBadRequest, "A mensagem está vazia.")
	errMessageTooLong = pkgErrors.NewHTTPError(http.StatusBadRequest, "A mensagem é longa demais.")
	errInvalidParams  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Dados inválidos.")
	errNotFound       = pkgErrors.NewHTTPError(http.StatusNotFound, "Registro não encontrado.")
	errNotAllowed     = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Operação não permitida.")
	errFailed         = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Não foi possível concluir a operação.")
	errBadSettings    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Configuração inválida.")
	errNoSettings     = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Configuração indisponível.")
)

// mapError translates domain errors into HTTP errors from pkg/errors. Unknown errors
// become a generic 500 so storage details never reach the caller.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, chat.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, operation.ErrMissingTenant):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, operation.ErrValidation):
		return errInvalidParams
	case errors.Is(err, operation.ErrTenantMismatch):
		return errNotFound
	case errors.Is(err, operation.ErrUnknownOperation),
		errors.Is(err, delegate.ErrUnknownOperationFromDelegate):
		return errNotAllowed
	case errors.Is(err, chat.ErrInvalidSettings):
		return errBadSettings
	case errors.Is(err, chat.ErrSettingsUnavailable):
		return errNoSettings
	case errors.Is(err, operation.ErrOperationFailed):
		return errFailed
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// withMessage keeps the status of base but shows msg, the text the orchestrator wrote for the user.
func withMessage(base *pkgErrors.HTTPError, msg string) *pkgErrors.HTTPError {
	if msg == "" {
		return base
	}
	return &pkgErrors.HTTPError{StatusCode: base.StatusCode, Code: base.Code, Message: msg}
}
