package http

import (
	"github.com/gin-gonic/gin"

	"secure-intent-router/internal/model"
	pkgErrors "secure-intent-router/pkg/errors"
	"secure-intent-router/pkg/scope"
)

// processScope returns the caller's scope set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processMessageReq binds the chat message body.
func (h *handler) processMessageReq(c *gin.Context) (model.Scope, messageReq, error) {
	var req messageReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "chat.delivery.http.processMessageReq: %v", err)
		return sc, req, errWrongBody
	}
	return sc, req, nil
}

// processAnalyzeReq binds the analyze body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if _, err := h.processScope(c); err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "chat.delivery.http.processAnalyzeReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

// processHistoryReq binds the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (model.Scope, historyReq, error) {
	var req historyReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, errWrongQuery
	}
	return sc, req, nil
}

// processSettingsReq binds the settings body.
func (h *handler) processSettingsReq(c *gin.Context) (model.Scope, settingsReq, error) {
	var req settingsReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "chat.delivery.http.processSettingsReq: %v", err)
		return sc, req, errWrongBody
	}
	return sc, req, nil
}
