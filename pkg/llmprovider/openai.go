package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Base URLs of the OpenAI-compatible backends.
const (
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultMaxTokens  = 1024
)

// OpenAIProvider talks to any OpenAI-compatible chat completion API. OpenRouter is the
// default since it accepts the vendor-prefixed model ids the router produces.
type OpenAIProvider struct {
	client *openai.Client
	name   string
	model  string
}

// NewOpenRouterProvider creates a provider for OpenRouter. baseURL may be empty.
func NewOpenRouterProvider(apiKey, model, baseURL string) *OpenAIProvider {
	if baseURL == "" {
		baseURL = OpenRouterBaseURL
	}
	return newOpenAIProvider("openrouter", apiKey, model, baseURL)
}

// NewOpenAIProvider creates a provider for the OpenAI API. baseURL may be empty.
func NewOpenAIProvider(apiKey, model, baseURL string) *OpenAIProvider {
	return newOpenAIProvider("openai", apiKey, model, baseURL)
}

func newOpenAIProvider(name, apiKey, model, baseURL string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		name:   name,
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string  { return p.name }
func (p *OpenAIProvider) Model() string { return p.model }

func (p *OpenAIProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	model := req.Model
	if model == "" {
		model = p.model
	}
	// go-openai omits a zero temperature, which the API reads as its default of 1.
	temperature := float32(req.Temperature)
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	var messages []openai.ChatCompletionMessage
	if req.SystemInstruction != nil {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: joinParts(req.SystemInstruction.Parts),
		})
	}
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: joinParts(m.Parts),
		})
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	if req.JSONMode {
		apiReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, &ProviderError{Provider: p.name, Err: classify(err)}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: p.name, Err: ErrEmptyResponse}
	}

	choice := resp.Choices[0]
	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: choice.Message.Content}}},
		ProviderName: p.name,
		ModelName:    resp.Model,
		FinishReason: string(choice.FinishReason),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	}
	return err
}

func joinParts(parts []Part) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
