package relay

// Envelope is the full unit of request state sent into the dispatch and
// tool pipeline: the ordered role-tagged turns plus request metadata.
//
// An envelope is built once per top-level ask and advanced only by the
// tool loop, which derives continuation envelopes rather than mutating
// the original. The final turn is always the user's new message; any
// context block is injected as a system turn immediately before it.
type Envelope struct {
	// Turns is the ordered sequence of role-tagged messages.
	Turns []Message
	// Model is the identifier resolved against the model registry.
	Model string
	// Tools are the tool descriptors offered to the model. Names are
	// unique within one envelope.
	Tools []Tool
	// Temperature is the sampling temperature, nil when unset or when
	// the resolved model does not honor it.
	Temperature *float64
	// ToolChoice controls how the model uses the offered tools.
	ToolChoice ToolChoice
	// SessionKey identifies the chat session, opaque to this core.
	SessionKey string
	// UserID identifies the requesting user, opaque to this core.
	UserID string
	// ResponseFormat requests a specific output shape.
	ResponseFormat ResponseFormat
}

// ToolByName returns the tool descriptor with the given name.
func (e *Envelope) ToolByName(name string) (Tool, bool) {
	for _, t := range e.Tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// CloneTurns returns a copy of the turn sequence. Continuation envelopes
// are built from a copy so the prior envelope is never mutated in place.
func (e *Envelope) CloneTurns() []Message {
	turns := make([]Message, len(e.Turns))
	copy(turns, e.Turns)
	return turns
}
