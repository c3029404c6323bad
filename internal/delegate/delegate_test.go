package delegate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"secure-intent-router/internal/operation"
	"secure-intent-router/pkg/llmprovider"
	"secure-intent-router/pkg/log"
)

type fakeGenerator struct {
	text    string
	err     error
	lastReq *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: f.text}}},
	}, nil
}

func TestSystemPrompt(t *testing.T) {
	prompt := SystemPrompt(operation.Catalog())

	for _, name := range operation.Names() {
		if !strings.Contains(prompt, "- "+string(name)+":") {
			t.Errorf("prompt does not list %s", name)
		}
	}
	if !strings.Contains(prompt, "NUNCA gera SQL") {
		t.Errorf("prompt lacks the SQL rule")
	}
	if !strings.Contains(prompt, "(parâmetros: address, building_size, client") {
		t.Errorf("prompt lacks parameter names")
	}
}

func TestInterpret(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		reply     string
		wantOp    operation.Name
		wantParam string
		wantText  string
	}{
		{
			name:      "operation with params",
			reply:     `{"operation": "update_project_status", "params": {"status": "Paralisada"}}`,
			wantOp:    operation.UpdateProjectStatus,
			wantParam: "Paralisada",
		},
		{
			name:   "fenced json",
			reply:  "```json\n{\"operation\": \"list_suppliers\"}\n```",
			wantOp: operation.ListSuppliers,
		},
		{
			name:     "json answer",
			reply:    `{"answer": "Não há operação para isso."}`,
			wantText: "Não há operação para isso.",
		},
		{
			name:     "plain text answer",
			reply:    "Bom dia! Como posso ajudar?",
			wantText: "Bom dia! Como posso ajudar?",
		},
		{
			name:     "empty reply",
			reply:    "  ",
			wantText: FallbackAnswer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{text: tc.reply}
			d := New(gen, log.NewNop())

			got, err := d.Interpret(ctx, "mensagem", Options{Model: "anthropic/claude-3-haiku"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Operation != tc.wantOp {
				t.Errorf("Operation = %q, want %q", got.Operation, tc.wantOp)
			}
			if tc.wantParam != "" && got.Params["status"] != tc.wantParam {
				t.Errorf("Params = %v", got.Params)
			}
			if tc.wantText != "" && got.Answer != tc.wantText {
				t.Errorf("Answer = %q, want %q", got.Answer, tc.wantText)
			}
			if gen.lastReq.Model != "anthropic/claude-3-haiku" {
				t.Errorf("chosen model not forwarded, got %q", gen.lastReq.Model)
			}
		})
	}
}

func TestInterpretRejectsUnknownOperation(t *testing.T) {
	gen := &fakeGenerator{text: `{"operation": "delete_all_projects", "params": {}}`}
	d := New(gen, log.NewNop())

	got, err := d.Interpret(context.Background(), "apague tudo", Options{Model: "m"})
	if !errors.Is(err, ErrUnknownOperationFromDelegate) {
		t.Fatalf("expected ErrUnknownOperationFromDelegate, got %v", err)
	}
	if got.HasOperation() {
		t.Errorf("unknown operation must not be returned, got %q", got.Operation)
	}
}

func TestInterpretGeneratorFailure(t *testing.T) {
	d := New(&fakeGenerator{err: llmprovider.ErrAllProvidersFailed}, log.NewNop())

	_, err := d.Interpret(context.Background(), "x", Options{Model: "m"})
	if !errors.Is(err, ErrDelegateFailed) {
		t.Fatalf("expected ErrDelegateFailed, got %v", err)
	}
}

func TestInterpretOptions(t *testing.T) {
	zero := 0.0
	tests := []struct {
		name      string
		opt       Options
		wantTemp  float64
		wantMaxTk int
	}{
		{"defaults", Options{Model: "m"}, Temperature, MaxTokens},
		{"tenant tuning", Options{Model: "m", Temperature: &zero, MaxTokens: 300}, 0, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: `{"answer": "ok"}`}
			if _, err := New(gen, log.NewNop()).Interpret(context.Background(), "x", tt.opt); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gen.lastReq.Temperature != tt.wantTemp || gen.lastReq.MaxTokens != tt.wantMaxTk {
				t.Errorf("request temperature/max tokens = %v/%d, want %v/%d",
					gen.lastReq.Temperature, gen.lastReq.MaxTokens, tt.wantTemp, tt.wantMaxTk)
			}
		})
	}
}
