// Package prompt assembles envelopes: the ordered role-tagged turns plus
// request metadata sent into the dispatch pipeline.
package prompt

import (
	"fmt"

	ai "github.com/spetersoncode/relay"
	"github.com/spetersoncode/relay/model"
)

// DuplicateToolError is returned when two tool descriptors in one
// request share a name, which would make lookup by name ambiguous.
type DuplicateToolError struct {
	Name string
}

// Error returns a formatted message including the duplicated name.
func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("prompt: duplicate tool name: %s", e.Name)
}

// Params carries the caller-supplied inputs for one envelope.
type Params struct {
	// Instructions are fixed scope/persona blocks, each becoming one
	// system turn in order.
	Instructions []string
	// UserTurns are the user's message contents; the last one is the
	// new message and always ends the envelope.
	UserTurns []string
	// HistoryText is the rendered context block. When non-empty it
	// becomes a system turn immediately before the user turns.
	HistoryText string
	// Model is resolved against the registry; construction fails on an
	// unknown identifier.
	Model string
	// Tools offered to the model. Names must be unique.
	Tools []ai.Tool
	// Temperature is suppressed entirely when the resolved model's
	// capability flag disables it.
	Temperature *float64
	ToolChoice  ai.ToolChoice
	SessionKey  string
	UserID      string
	// ResponseFormat is passed through opaque to the gateway.
	ResponseFormat ai.ResponseFormat
}

// Build assembles a new envelope from the given parameters. The turn
// order is: one system turn per instruction block, a system turn
// carrying the history text (omitted when empty), then the user turns.
func Build(registry *model.Registry, p Params) (*ai.Envelope, error) {
	desc, err := registry.Resolve(p.Model)
	if err != nil {
		return nil, err
	}

	if len(p.UserTurns) == 0 {
		return nil, fmt.Errorf("prompt: %w: at least one user turn is required", ai.ErrEmptyInput)
	}

	seen := make(map[string]struct{}, len(p.Tools))
	for _, t := range p.Tools {
		if _, dup := seen[t.Name]; dup {
			return nil, &DuplicateToolError{Name: t.Name}
		}
		seen[t.Name] = struct{}{}
	}

	turns := make([]ai.Message, 0, len(p.Instructions)+len(p.UserTurns)+1)
	for _, block := range p.Instructions {
		turns = append(turns, ai.Message{Role: ai.RoleSystem, Content: block})
	}
	if p.HistoryText != "" {
		turns = append(turns, ai.Message{Role: ai.RoleSystem, Content: p.HistoryText})
	}
	for _, content := range p.UserTurns {
		turns = append(turns, ai.Message{Role: ai.RoleUser, Content: content})
	}

	temperature := p.Temperature
	if !desc.TemperatureEnabled {
		temperature = nil
	}

	return &ai.Envelope{
		Turns:          turns,
		Model:          p.Model,
		Tools:          p.Tools,
		Temperature:    temperature,
		ToolChoice:     p.ToolChoice,
		SessionKey:     p.SessionKey,
		UserID:         p.UserID,
		ResponseFormat: p.ResponseFormat,
	}, nil
}
