package delegate

import (
	"context"

	"secure-intent-router/internal/operation"
	"secure-intent-router/pkg/llmprovider"
)

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options tunes one Interpret call. Nil Temperature and zero MaxTokens use the defaults.
type Options struct {
	Model       string
	Temperature *float64
	MaxTokens   int
}

func (o Options) temperature() float64 {
	if o.Temperature == nil {
		return Temperature
	}
	return *o.Temperature
}

func (o Options) maxTokens() int {
	if o.MaxTokens <= 0 {
		return MaxTokens
	}
	return o.MaxTokens
}

// Decision is what the model chose: a whitelisted operation with params, or a plain answer.
type Decision struct {
	Operation operation.Name
	Params    map[string]any
	Answer    string
	Model     string
}

// HasOperation reports whether the model selected an operation.
func (d Decision) HasOperation() bool {
	return d.Operation != ""
}

type reply struct {
	Operation string         `json:"operation"`
	Params    map[string]any `json:"params"`
	Answer    string         `json:"answer"`
}
