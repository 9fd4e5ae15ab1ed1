package prompt

import ai "github.com/spetersoncode/relay"

// ForToolContinuation derives the envelope for the next tool-loop round:
// the assistant's tool-call turn and the tool's result turn are appended
// to a copy of the prior envelope's turns. Model, tools, session,
// temperature, tool choice, and response format are preserved from the
// original, which is never mutated.
func ForToolContinuation(prior *ai.Envelope, call ai.ToolCall, result ai.ToolResult) *ai.Envelope {
	turns := prior.CloneTurns()
	turns = append(turns,
		ai.Message{
			Role:      ai.RoleAssistant,
			ToolCalls: []ai.ToolCall{call},
		},
		ai.NewToolResultMessage(result),
	)

	return &ai.Envelope{
		Turns:          turns,
		Model:          prior.Model,
		Tools:          prior.Tools,
		Temperature:    prior.Temperature,
		ToolChoice:     prior.ToolChoice,
		SessionKey:     prior.SessionKey,
		UserID:         prior.UserID,
		ResponseFormat: prior.ResponseFormat,
	}
}
