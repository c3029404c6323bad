package chat

import (
	"time"

	"secure-intent-router/internal/operation"
	"secure-intent-router/internal/router"
)

// Path tells which branch of the state machine produced a response.
type Path string

const (
	PathClassified Path = "classified"
	PathDelegated  Path = "delegated"
	PathDirect     Path = "direct"
	PathAnswered   Path = "answered"
)

// --- UseCase Inputs ---

type DispatchInput struct {
	Message string
	// Params are extracted parameters for the classified operation, e.g. the fields of a new project.
	Params map[string]any
}

// UpdateSettingsInput replaces the tenant's delegate configuration as a whole.
type UpdateSettingsInput struct {
	PreferredModel string   `json:"preferred_model" validate:"omitempty,max=100,printascii"`
	Temperature    *float64 `json:"temperature" validate:"required,min=0,max=2"`
	MaxTokens      int      `json:"max_tokens" validate:"required,min=1,max=4000"`
}

// --- UseCase Outputs ---

type DispatchOutput struct {
	Response   string
	Operation  operation.Name
	Data       any
	FromCache  bool
	Success    bool
	Path       Path
	Assessment *router.Assessment
	Model      string
}

type AnalyzeOutput struct {
	Operation  operation.Name
	Matched    bool
	Assessment router.Assessment
}

// DelegateSettings tunes the external model calls made for one tenant.
// An empty PreferredModel keeps the complexity router's choice.
type DelegateSettings struct {
	TenantID       string
	PreferredModel string
	Temperature    float64
	MaxTokens      int
	UpdatedAt      time.Time
}
