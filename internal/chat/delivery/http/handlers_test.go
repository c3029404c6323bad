package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"secure-intent-router/internal/audit"
	"secure-intent-router/internal/cache"
	"secure-intent-router/internal/chat"
	"secure-intent-router/internal/delegate"
	"secure-intent-router/internal/middleware"
	"secure-intent-router/internal/model"
	"secure-intent-router/internal/operation"
	"secure-intent-router/internal/router"
	"secure-intent-router/pkg/log"
	"secure-intent-router/pkg/response"
	"secure-intent-router/pkg/scope"
)

const testSecret = "handler-secret"

type fakeUseCase struct {
	out     chat.DispatchOutput
	err     error
	gotSc   model.Scope
	gotIn   chat.DispatchInput
	records []audit.Record
	limit   int
	dropped int

	settings    chat.DelegateSettings
	settingsErr error
	gotSettings chat.UpdateSettingsInput
}

func (f *fakeUseCase) Dispatch(ctx context.Context, sc model.Scope, in chat.DispatchInput) (chat.DispatchOutput, error) {
	f.gotSc, f.gotIn = sc, in
	return f.out, f.err
}

func (f *fakeUseCase) Analyze(ctx context.Context, message string) (chat.AnalyzeOutput, error) {
	return chat.AnalyzeOutput{
		Operation:  operation.ListProjects,
		Matched:    true,
		Assessment: router.Assessment{Tier: router.TierSimple},
	}, nil
}

func (f *fakeUseCase) Operations() []operation.Definition { return operation.Catalog() }

func (f *fakeUseCase) History(ctx context.Context, sc model.Scope, limit int) []audit.Record {
	f.gotSc, f.limit = sc, limit
	return f.records
}

func (f *fakeUseCase) Settings(ctx context.Context, sc model.Scope) (chat.DelegateSettings, error) {
	f.gotSc = sc
	return f.settings, f.settingsErr
}

func (f *fakeUseCase) UpdateSettings(ctx context.Context, sc model.Scope, in chat.UpdateSettingsInput) (chat.DelegateSettings, error) {
	f.gotSc, f.gotSettings = sc, in
	if f.settingsErr != nil {
		return chat.DelegateSettings{}, f.settingsErr
	}
	return f.settings, nil
}

func (f *fakeUseCase) CacheStats(ctx context.Context) cache.Stats {
	return cache.Stats{Hits: 3, Misses: 1}
}

func (f *fakeUseCase) InvalidateCache(ctx context.Context, sc model.Scope) (int, error) {
	f.gotSc = sc
	return f.dropped, nil
}

type testServer struct {
	engine  *gin.Engine
	uc      *fakeUseCase
	tenant  string
	token   string
	opToken string // operator tenant
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := scope.New(testSecret)
	tenant := uuid.NewString()
	token, err := jwtManager.CreateToken(tenant, "", time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	operator := uuid.NewString()
	opToken, err := jwtManager.CreateToken(operator, "", time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	uc := &fakeUseCase{}
	engine := gin.New()
	mw := middleware.New(log.NewNop(), jwtManager, 0).WithOperators(operator)
	RegisterRoutes(engine.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return &testServer{engine: engine, uc: uc, tenant: tenant, token: token, opToken: opToken}
}

func (s *testServer) do(method, path string, body any, auth bool) (*httptest.ResponseRecorder, response.Resp) {
	token := ""
	if auth {
		token = s.token
	}
	return s.doAs(method, path, body, token)
}

// doAs sends the request with token as bearer, or without Authorization when token is empty.
func (s *testServer) doAs(method, path string, body any, token string) (*httptest.ResponseRecorder, response.Resp) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSendMessage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTestServer(t)
		s.uc.out = chat.DispatchOutput{
			Response:  "Encontrei 1 obra",
			Operation: operation.GetActiveProjects,
			Success:   true,
			Path:      chat.PathClassified,
		}

		w, resp := s.do(http.MethodPost, "/api/v1/chat/messages", gin.H{"message": "obras ativas"}, true)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if s.uc.gotSc.TenantID != s.tenant {
			t.Errorf("tenant = %q, want %q", s.uc.gotSc.TenantID, s.tenant)
		}
		if s.uc.gotIn.Message != "obras ativas" {
			t.Errorf("message = %q", s.uc.gotIn.Message)
		}
		data, _ := resp.Data.(map[string]any)
		if data["operation"] != string(operation.GetActiveProjects) || data["response"] != "Encontrei 1 obra" {
			t.Errorf("unexpected data %v", data)
		}
	})

	t.Run("without token", func(t *testing.T) {
		s := newTestServer(t)
		w, _ := s.do(http.MethodPost, "/api/v1/chat/messages", gin.H{"message": "obras"}, false)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		s := newTestServer(t)
		w, _ := s.do(http.MethodPost, "/api/v1/chat/messages", gin.H{}, true)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	errCases := []struct {
		name       string
		err        error
		text       string
		wantStatus int
		wantField  string
	}{
		{
			name:       "validation",
			err:        &operation.ValidationError{Operation: operation.CreateProject, Field: "owner", Reason: "é obrigatório"},
			text:       "Dados inválidos",
			wantStatus: http.StatusBadRequest,
			wantField:  "owner",
		},
		{"foreign record", operation.ErrTenantMismatch, "Registro não encontrado.", http.StatusNotFound, ""},
		{"storage failure", &operation.OperationError{Message: "Erro ao buscar obras", Cause: errors.New("pq: timeout")}, "Erro ao buscar obras", http.StatusInternalServerError, ""},
		{"delegate proposed unknown", delegate.ErrUnknownOperationFromDelegate, "Operação não permitida.", http.StatusUnprocessableEntity, ""},
		{"empty message", chat.ErrEmptyMessage, "", http.StatusBadRequest, ""},
	}
	for _, tt := range errCases {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.uc.out = chat.DispatchOutput{Response: tt.text, Operation: operation.CreateProject}
			s.uc.err = tt.err

			w, resp := s.do(http.MethodPost, "/api/v1/chat/messages", gin.H{"message": "x"}, true)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.text != "" && resp.Message != tt.text {
				t.Errorf("message = %q, want %q", resp.Message, tt.text)
			}
			if bytes.Contains(w.Body.Bytes(), []byte("pq:")) {
				t.Errorf("storage detail leaked: %s", w.Body.String())
			}
			if tt.wantField != "" {
				details, _ := resp.Errors.(map[string]any)
				if details["field"] != tt.wantField {
					t.Errorf("field = %v, want %q", details["field"], tt.wantField)
				}
			}
		})
	}
}

func TestHistory(t *testing.T) {
	s := newTestServer(t)
	s.uc.records = []audit.Record{{ID: "r1", TenantID: s.tenant, Operation: "list_projects", Success: true, Timestamp: time.Now()}}

	w, resp := s.do(http.MethodGet, "/api/v1/chat/history?limit=5000", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if s.uc.limit != maxHistoryLimit {
		t.Errorf("limit = %d, want clamp to %d", s.uc.limit, maxHistoryLimit)
	}
	data, _ := resp.Data.(map[string]any)
	if data["total"] != float64(1) {
		t.Errorf("total = %v", data["total"])
	}

	t.Run("default limit", func(t *testing.T) {
		s.do(http.MethodGet, "/api/v1/chat/history", nil, true)
		if s.uc.limit != defaultHistoryLimit {
			t.Errorf("limit = %d, want %d", s.uc.limit, defaultHistoryLimit)
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		w, _ := s.do(http.MethodGet, "/api/v1/chat/history?limit=abc", nil, true)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestOperationsAndCache(t *testing.T) {
	s := newTestServer(t)

	w, resp := s.do(http.MethodGet, "/api/v1/chat/operations", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("operations status = %d", w.Code)
	}
	data, _ := resp.Data.(map[string]any)
	ops, _ := data["operations"].([]any)
	if len(ops) != len(operation.Catalog()) {
		t.Errorf("got %d operations, want %d", len(ops), len(operation.Catalog()))
	}

	w, _ = s.do(http.MethodGet, "/api/v1/cache/stats", nil, true)
	if w.Code != http.StatusForbidden {
		t.Errorf("stats for a plain tenant: status = %d, want 403", w.Code)
	}

	w, resp = s.doAs(http.MethodGet, "/api/v1/cache/stats", nil, s.opToken)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d", w.Code)
	}
	if stats, _ := resp.Data.(map[string]any); stats["hits"] != float64(3) {
		t.Errorf("stats = %v", stats)
	}

	s.uc.dropped = 4
	w, resp = s.do(http.MethodDelete, "/api/v1/cache", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("invalidate status = %d", w.Code)
	}
	if s.uc.gotSc.TenantID != s.tenant {
		t.Errorf("invalidated tenant %q, want %q", s.uc.gotSc.TenantID, s.tenant)
	}
	if out, _ := resp.Data.(map[string]any); out["invalidated"] != float64(4) {
		t.Errorf("invalidated = %v", out)
	}

	w, _ = s.do(http.MethodDelete, "/api/v1/cache", nil, false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)
	w, resp := s.do(http.MethodPost, "/api/v1/chat/analyze", gin.H{"message": "listar obras"}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	data, _ := resp.Data.(map[string]any)
	if data["matched"] != true {
		t.Errorf("unexpected data %v", data)
	}
}

func TestSettings(t *testing.T) {
	updated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("get", func(t *testing.T) {
		s := newTestServer(t)
		s.uc.settings = chat.DelegateSettings{TenantID: s.tenant, Temperature: 0.1, MaxTokens: 1000}

		w, resp := s.do(http.MethodGet, "/api/v1/chat/settings", nil, true)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if s.uc.gotSc.TenantID != s.tenant {
			t.Errorf("tenant = %q, want %q", s.uc.gotSc.TenantID, s.tenant)
		}
		data, _ := resp.Data.(map[string]any)
		if data["max_tokens"] != float64(1000) || data["temperature"] != 0.1 {
			t.Errorf("unexpected data %v", data)
		}
		if _, ok := data["updated_at"]; ok {
			t.Errorf("defaults carry no updated_at: %v", data)
		}
	})

	t.Run("put", func(t *testing.T) {
		s := newTestServer(t)
		s.uc.settings = chat.DelegateSettings{TenantID: s.tenant, PreferredModel: "openai/gpt-4o", Temperature: 0, MaxTokens: 300, UpdatedAt: updated}

		body := gin.H{"preferred_model": "openai/gpt-4o", "temperature": 0, "max_tokens": 300}
		w, resp := s.do(http.MethodPut, "/api/v1/chat/settings", body, true)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		in := s.uc.gotSettings
		if in.Temperature == nil || *in.Temperature != 0 || in.MaxTokens != 300 || in.PreferredModel != "openai/gpt-4o" {
			t.Errorf("unexpected input %+v", in)
		}
		data, _ := resp.Data.(map[string]any)
		if data["updated_at"] != "2024-05-01 12:00:00" || data["preferred_model"] != "openai/gpt-4o" {
			t.Errorf("unexpected data %v", data)
		}
	})

	t.Run("invalid field is named", func(t *testing.T) {
		s := newTestServer(t)
		s.uc.settingsErr = &chat.SettingsError{Field: "temperature", Reason: "max"}

		w, resp := s.do(http.MethodPut, "/api/v1/chat/settings", gin.H{"temperature": 9, "max_tokens": 10}, true)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if data, _ := resp.Data.(map[string]any); data["field"] != "temperature" {
			t.Errorf("unexpected data %v", resp.Data)
		}
	})

	t.Run("store not configured", func(t *testing.T) {
		s := newTestServer(t)
		s.uc.settingsErr = chat.ErrSettingsUnavailable

		w, _ := s.do(http.MethodPut, "/api/v1/chat/settings", gin.H{"temperature": 0.2, "max_tokens": 10}, true)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t)
		w, _ := s.do(http.MethodPut, "/api/v1/chat/settings", "not an object", true)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("without token", func(t *testing.T) {
		s := newTestServer(t)
		w, _ := s.do(http.MethodGet, "/api/v1/chat/settings", nil, false)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}
