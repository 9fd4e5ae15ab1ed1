// Package ask is the top-level entry point for dispatching a question
// to a model and returning the identifier of the persisted answer.
//
// The [Orchestrator] builds the envelope (assembling prior conversation
// context when asked to), runs the tool invocation loop against the
// dispatch service, and persists the resulting [relay.Result] through
// the external repository collaborator. Provider failures never escape
// Execute: they are swallowed into a degraded, clearly-marked fallback
// result whose identifier is still returned. Configuration errors (an
// unknown model, a call to an unregistered tool) do propagate.
package ask
