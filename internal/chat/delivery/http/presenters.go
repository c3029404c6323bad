package http

import (
	"secure-intent-router/internal/audit"
	"secure-intent-router/internal/cache"
	"secure-intent-router/internal/chat"
	"secure-intent-router/internal/operation"
	"secure-intent-router/internal/router"
	"secure-intent-router/pkg/response"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = audit.DefaultCapacity
)

// --- Request DTOs ---

type messageReq struct {
	Message string         `json:"message" binding:"required"`
	Params  map[string]any `json:"params"`
}

func (r messageReq) toInput() chat.DispatchInput {
	return chat.DispatchInput{
		Message: r.Message,
		Params:  r.Params,
	}
}

type analyzeReq struct {
	Message string `json:"message" binding:"required"`
}

type historyReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (r historyReq) limit() int {
	switch {
	case r.Limit <= 0:
		return defaultHistoryLimit
	case r.Limit > maxHistoryLimit:
		return maxHistoryLimit
	}
	return r.Limit
}

// settingsReq is validated by the use case so that field errors come back named.
type settingsReq struct {
	PreferredModel string   `json:"preferred_model"`
	Temperature    *float64 `json:"temperature"`
	MaxTokens      int      `json:"max_tokens"`
}

func (r settingsReq) toInput() chat.UpdateSettingsInput {
	return chat.UpdateSettingsInput{
		PreferredModel: r.PreferredModel,
		Temperature:    r.Temperature,
		MaxTokens:      r.MaxTokens,
	}
}

// --- Response DTOs ---

type messageResp struct {
	Response   string             `json:"response"`
	Operation  string             `json:"operation,omitempty"`
	Data       any                `json:"data,omitempty"`
	FromCache  bool               `json:"from_cache"`
	Success    bool               `json:"success"`
	Path       string             `json:"path"`
	Model      string             `json:"model,omitempty"`
	Assessment *router.Assessment `json:"assessment,omitempty"`
}

func (h *handler) newMessageResp(out chat.DispatchOutput) messageResp {
	return messageResp{
		Response:   out.Response,
		Operation:  string(out.Operation),
		Data:       out.Data,
		FromCache:  out.FromCache,
		Success:    out.Success,
		Path:       string(out.Path),
		Model:      out.Model,
		Assessment: out.Assessment,
	}
}

// failureData is attached to error responses of SendMessage.
type failureData struct {
	Operation string `json:"operation,omitempty"`
	Field     string `json:"field,omitempty"`
	Path      string `json:"path,omitempty"`
}

type analyzeResp struct {
	Operation  string            `json:"operation,omitempty"`
	Matched    bool              `json:"matched"`
	Assessment router.Assessment `json:"assessment"`
}

func (h *handler) newAnalyzeResp(out chat.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Operation:  string(out.Operation),
		Matched:    out.Matched,
		Assessment: out.Assessment,
	}
}

type operationResp struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Kind        string         `json:"kind"`
	Cacheable   bool           `json:"cacheable"`
	TTLSeconds  int64          `json:"ttl_seconds,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type operationsResp struct {
	Version    string          `json:"version"`
	Operations []operationResp `json:"operations"`
}

func (h *handler) newOperationsResp(defs []operation.Definition) operationsResp {
	ops := make([]operationResp, len(defs))
	for i, d := range defs {
		ops[i] = operationResp{
			Name:        string(d.Name),
			Description: d.Description,
			Kind:        string(d.Kind),
			Cacheable:   d.Cacheable,
			TTLSeconds:  int64(d.TTL.Seconds()),
			Parameters:  d.Parameters,
		}
	}
	return operationsResp{Version: operation.CatalogVersion, Operations: ops}
}

type recordResp struct {
	ID        string            `json:"id"`
	Timestamp response.DateTime `json:"timestamp"`
	Operation string            `json:"operation,omitempty"`
	Message   string            `json:"message"`
	Success   bool              `json:"success"`
	FromCache bool              `json:"from_cache"`
	ErrorKind string            `json:"error_kind,omitempty"`
}

type historyResp struct {
	Records []recordResp `json:"records"`
	Total   int          `json:"total"`
}

func (h *handler) newHistoryResp(records []audit.Record) historyResp {
	out := make([]recordResp, len(records))
	for i, r := range records {
		out[i] = recordResp{
			ID:        r.ID,
			Timestamp: response.DateTime(r.Timestamp),
			Operation: r.Operation,
			Message:   r.Message,
			Success:   r.Success,
			FromCache: r.FromCache,
			ErrorKind: r.ErrorKind,
		}
	}
	return historyResp{Records: out, Total: len(out)}
}

type settingsResp struct {
	PreferredModel string             `json:"preferred_model,omitempty"`
	Temperature    float64            `json:"temperature"`
	MaxTokens      int                `json:"max_tokens"`
	UpdatedAt      *response.DateTime `json:"updated_at,omitempty"`
}

func (h *handler) newSettingsResp(s chat.DelegateSettings) settingsResp {
	resp := settingsResp{
		PreferredModel: s.PreferredModel,
		Temperature:    s.Temperature,
		MaxTokens:      s.MaxTokens,
	}
	if !s.UpdatedAt.IsZero() {
		t := response.DateTime(s.UpdatedAt)
		resp.UpdatedAt = &t
	}
	return resp
}

type settingsFailure struct {
	Field string `json:"field,omitempty"`
}

type cacheStatsResp struct {
	cache.Stats
}

type invalidateResp struct {
	Invalidated int `json:"invalidated"`
}
