package llmprovider

import (
	"context"
	"strings"
)

// Provider is one chat-completion backend.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Name() string
	// Model is the default model, used when Request.Model is empty.
	Model() string
}

// Request is a provider-neutral completion request.
type Request struct {
	// Model overrides the provider default for this call.
	Model             string
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONMode asks the backend for a JSON object reply when supported.
	JSONMode bool
}

// Message is one chat turn. Role is "system", "user" or "assistant".
type Message struct {
	Role  string
	Parts []Part
}

type Part struct {
	Text string
}

// UserText builds a single-part user message.
func UserText(text string) Message {
	return Message{Role: RoleUser, Parts: []Part{{Text: text}}}
}

// SystemText builds a single-part system message.
func SystemText(text string) *Message {
	return &Message{Role: RoleSystem, Parts: []Part{{Text: text}}}
}

// Response is a provider-neutral completion result.
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	FinishReason string
	Usage        *Usage
}

// Text joins the text parts of the reply.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
