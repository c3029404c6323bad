package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"secure-intent-router/internal/chat"
	"secure-intent-router/internal/operation"
	"secure-intent-router/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Classifies the message into a whitelisted operation and runs it for the caller's tenant.
// @Description Unclassified messages get a complexity assessment and, when configured, an external model answer.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body messageReq true "Message"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Operation not allowed"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Dispatch(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Dispatch: %v", err)
		data := failureData{Operation: string(output.Operation), Path: string(output.Path)}
		var verr *operation.ValidationError
		if errors.As(err, &verr) {
			data.Field = verr.Field
		}
		response.ErrorWithData(c, withMessage(h.mapError(err), output.Response), data)
		return
	}

	response.OK(c, h.newMessageResp(output))
}

// Analyze godoc
// @Summary     Analyze a message
// @Description Reports the classified operation and the complexity assessment without executing anything.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body analyzeReq true "Message"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.Message)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Operations godoc
// @Summary     List whitelisted operations
// @Description Returns the operation catalog: names, kinds, cache policy and parameter schemas.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} operationsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/operations [GET]
func (h *handler) Operations(c *gin.Context) {
	if _, err := h.processScope(c); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.newOperationsResp(h.uc.Operations()))
}

// History godoc
// @Summary     Operation history
// @Description Returns the caller's operation records, newest first.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Max records (default: 50)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(h.uc.History(ctx, sc, req.limit())))
}

// GetSettings godoc
// @Summary     Delegate settings
// @Description Returns the caller's external model settings, or the defaults when none were saved.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} settingsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/settings [GET]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Settings(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Settings: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSettingsResp(s))
}

// UpdateSettings godoc
// @Summary     Update delegate settings
// @Description Replaces the caller's external model settings: temperature, max tokens and an optional preferred model.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body settingsReq true "Settings"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Settings store not configured"
// @Router      /api/v1/chat/settings [PUT]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSettingsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.UpdateSettings(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateSettings: %v", err)
		var serr *chat.SettingsError
		if errors.As(err, &serr) {
			response.ErrorWithData(c, h.mapError(err), settingsFailure{Field: serr.Field})
			return
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSettingsResp(s))
}

// CacheStats godoc
// @Summary     Cache statistics
// @Description Returns backend and adapter hit/miss counters for the whole store. Operator tenants only.
// @Tags        Cache
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} cacheStatsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/cache/stats [GET]
func (h *handler) CacheStats(c *gin.Context) {
	if _, err := h.processScope(c); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cacheStatsResp{Stats: h.uc.CacheStats(c.Request.Context())})
}

// InvalidateCache godoc
// @Summary     Invalidate the caller's cache
// @Description Drops every cache entry of the caller's tenant.
// @Tags        Cache
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} invalidateResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/cache [DELETE]
func (h *handler) InvalidateCache(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	n, err := h.uc.InvalidateCache(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.InvalidateCache: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, invalidateResp{Invalidated: n})
}
