package delegate

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"secure-intent-router/internal/operation"
	"secure-intent-router/pkg/llmprovider"
	"secure-intent-router/pkg/log"
)

// Delegate asks an external model to pick a whitelisted operation for a message.
type Delegate struct {
	gen    Generator
	l      log.Logger
	prompt string
}

func New(gen Generator, l log.Logger) *Delegate {
	return &Delegate{
		gen:    gen,
		l:      l,
		prompt: SystemPrompt(operation.Catalog()),
	}
}

// SystemPrompt renders the constrained instructions listing only defs.
func SystemPrompt(defs []operation.Definition) string {
	var b strings.Builder
	for _, d := range defs {
		fmt.Fprintf(&b, "- %s: %s", d.Name, d.Description)
		if props, ok := d.Parameters["properties"].(map[string]any); ok && len(props) > 0 {
			b.WriteString(" (parâmetros: ")
			b.WriteString(strings.Join(sortedKeys(props), ", "))
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return fmt.Sprintf(promptTemplate, b.String())
}

// Interpret sends message to opt.Model and parses the reply. A proposed operation outside the
// registry yields ErrUnknownOperationFromDelegate; a reply that is not JSON is a plain answer.
func (d *Delegate) Interpret(ctx context.Context, message string, opt Options) (Decision, error) {
	model := opt.Model
	resp, err := d.gen.GenerateContent(ctx, &llmprovider.Request{
		Model:             model,
		SystemInstruction: llmprovider.SystemText(d.prompt),
		Messages:          []llmprovider.Message{llmprovider.UserText(message)},
		Temperature:       opt.temperature(),
		MaxTokens:         opt.maxTokens(),
		JSONMode:          true,
	})
	if err != nil {
		d.l.Errorf(ctx, "%s: %v", LogPrefixInterpret, err)
		return Decision{}, fmt.Errorf("%w: %v", ErrDelegateFailed, err)
	}

	used := model
	if resp.ModelName != "" {
		used = resp.ModelName
	}

	text := stripFences(resp.Text())
	if text == "" {
		d.l.Warnf(ctx, "%s: empty reply from %s", LogPrefixInterpret, used)
		return Decision{Answer: FallbackAnswer, Model: used}, nil
	}

	var r reply
	if err := json.Unmarshal([]byte(text), &r); err != nil {
		return Decision{Answer: text, Model: used}, nil
	}

	if r.Operation == "" {
		answer := r.Answer
		if answer == "" {
			answer = FallbackAnswer
		}
		return Decision{Answer: answer, Model: used}, nil
	}

	name := operation.Name(r.Operation)
	if !operation.Known(name) {
		d.l.Warnf(ctx, "%s: rejected operation %q proposed by %s", LogPrefixInterpret, r.Operation, used)
		return Decision{Model: used}, fmt.Errorf("%w: %q", ErrUnknownOperationFromDelegate, r.Operation)
	}

	d.l.Infof(ctx, "%s: %s selected %s", LogPrefixInterpret, used, name)
	return Decision{Operation: name, Params: r.Params, Model: used}, nil
}

// stripFences removes a surrounding markdown code block (```json ... ```).
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
