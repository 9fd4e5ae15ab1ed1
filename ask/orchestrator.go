package ask

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
	ai "github.com/spetersoncode/relay"
	"github.com/spetersoncode/relay/dispatch"
	"github.com/spetersoncode/relay/history"
	"github.com/spetersoncode/relay/model"
	"github.com/spetersoncode/relay/prompt"
)

// DefaultMaxToolSteps bounds the tool invocation loop. A provider that
// keeps requesting tool calls past this bound fails closed to the
// fallback responder instead of looping forever.
const DefaultMaxToolSteps = 10

// Dispatcher forwards an envelope to the provider owning its model.
// *dispatch.Service implements this.
type Dispatcher interface {
	Ask(ctx context.Context, env *ai.Envelope) (*ai.RawCompletion, error)
}

// ResultRepository is the external persistence collaborator. It assigns
// and returns an opaque identifier for each stored result.
type ResultRepository interface {
	Create(ctx context.Context, result *ai.Result, userID string) (string, error)
	Get(ctx context.Context, id string) (*ai.Result, error)
}

// Orchestrator is the sole public entry point for callers.
type Orchestrator struct {
	dispatcher   Dispatcher
	repo         ResultRepository
	registry     *model.Registry
	assembler    *history.Assembler
	fallback     *Fallback
	maxToolSteps int
	log          zerolog.Logger
}

// OrchestratorOption configures an Orchestrator at construction time.
type OrchestratorOption func(*Orchestrator)

// WithAssembler enables conversation-context assembly for requests that
// name a conversation.
func WithAssembler(a *history.Assembler) OrchestratorOption {
	return func(o *Orchestrator) {
		o.assembler = a
	}
}

// WithMaxToolSteps overrides the tool loop bound.
func WithMaxToolSteps(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		o.maxToolSteps = n
	}
}

// WithLogger sets the orchestrator's logger.
func WithLogger(log zerolog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		o.log = log
	}
}

// New creates an Orchestrator.
func New(dispatcher Dispatcher, repo ResultRepository, registry *model.Registry, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		dispatcher:   dispatcher,
		repo:         repo,
		registry:     registry,
		fallback:     NewFallback(),
		maxToolSteps: DefaultMaxToolSteps,
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Execute runs one ask end to end: build the envelope, run the tool
// loop, wrap or degrade the outcome into a result, persist it, and
// return the assigned identifier.
func (o *Orchestrator) Execute(ctx context.Context, userTurns []string, userID, modelID string, opts ...Option) (string, error) {
	options := applyOptions(opts...)

	historyText := options.historyText
	if historyText == "" && options.conversationID != "" && o.assembler != nil {
		turns, err := o.assembler.Assemble(ctx, options.conversationID, options.selectOptions()...)
		if err != nil {
			return "", err
		}
		historyText = history.Render(turns)
	}

	var tools []ai.Tool
	if options.tools != nil {
		tools = options.tools.Tools()
	}

	env, err := prompt.Build(o.registry, prompt.Params{
		Instructions:   options.instructions,
		UserTurns:      userTurns,
		HistoryText:    historyText,
		Model:          modelID,
		Tools:          tools,
		Temperature:    &options.temperature,
		ToolChoice:     options.toolChoice,
		SessionKey:     options.sessionKey,
		UserID:         userID,
		ResponseFormat: options.responseFormat,
	})
	if err != nil {
		return "", err
	}

	resp, usage, err := o.runLoop(ctx, env, options.tools)

	var result *ai.Result
	switch {
	case err == nil:
		result = o.successResult(env, resp, usage)
	case errors.Is(err, ErrMaxToolSteps) || isGatewayError(err):
		// Degraded but well-formed: conversation flows never hard-fail
		// on transient provider issues.
		o.log.Warn().Str("model", modelID).Err(err).Msg("degrading to fallback result")
		result = o.fallback.Build(env)
	default:
		return "", err
	}

	id, err := o.repo.Create(ctx, result, userID)
	if err != nil {
		return "", err
	}

	o.log.Info().
		Str("result_id", id).
		Str("model", modelID).
		Bool("is_error", result.IsError).
		Int("total_tokens", result.TotalTokens).
		Msg("result persisted")

	return id, nil
}

// successResult wraps a completed RawCompletion. The textual payload is
// parsed as JSON when possible, falling back to the raw text.
func (o *Orchestrator) successResult(env *ai.Envelope, resp *ai.RawCompletion, usage ai.Usage) *ai.Result {
	var response any = resp.Content
	var parsed any
	if err := json.Unmarshal([]byte(resp.Content), &parsed); err == nil {
		response = parsed
	}

	return &ai.Result{
		Response:     response,
		Model:        env.Model,
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		TotalTokens:  usage.Total(),
		Prompt:       env.CloneTurns(),
	}
}

func isGatewayError(err error) bool {
	var ge *dispatch.GatewayError
	return errors.As(err, &ge)
}
