package relay

// Result is the final or degraded answer produced for one ask.
//
// A Result is created by the orchestrator on the success path or by the
// fallback responder on the failure path, then immediately handed to the
// external persistence collaborator, which assigns its identifier.
type Result struct {
	// Response is the structured payload (parsed JSON) or raw text.
	Response any `json:"response"`
	// Model records which model produced (or failed to produce) the answer.
	Model string `json:"model"`
	// InputTokens and OutputTokens are the provider-reported counts.
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
	// TotalTokens is stored as reported; it is recomputed as the sum on
	// success paths but readers must not assume the invariant holds.
	TotalTokens int `json:"totalTokens"`
	// IsError marks degraded results built by the fallback responder.
	IsError bool `json:"isError"`
	// Prompt is a copy of the envelope's turns, kept for audit.
	Prompt []Message `json:"prompt,omitempty"`
}
