package ask

import (
	"context"
	"errors"
	"fmt"

	ai "github.com/spetersoncode/relay"
	"github.com/spetersoncode/relay/prompt"
	"github.com/spetersoncode/relay/tool"
)

// ErrMaxToolSteps is returned when the provider keeps requesting tool
// calls past the configured step bound.
var ErrMaxToolSteps = errors.New("exceeded maximum tool invocation steps")

// runLoop dispatches the envelope and services tool calls until the
// provider completes, the step bound trips, or dispatch fails. Usage is
// accumulated across every round trip.
func (o *Orchestrator) runLoop(ctx context.Context, env *ai.Envelope, tools *tool.Registry) (*ai.RawCompletion, ai.Usage, error) {
	var usage ai.Usage

	for step := 1; step <= o.maxToolSteps; step++ {
		resp, err := o.dispatcher.Ask(ctx, env)
		if err != nil {
			return nil, usage, err
		}
		usage.Add(resp.Usage)

		if resp.FinishReason != ai.FinishToolCall {
			return resp, usage, nil
		}

		if resp.ToolCall == nil {
			return nil, usage, fmt.Errorf("model %s signalled a tool call without a payload", env.Model)
		}
		call := resp.ToolCall

		if _, ok := env.ToolByName(call.Name); !ok || tools == nil {
			return nil, usage, &tool.ErrToolNotFound{Name: call.Name}
		}

		o.log.Debug().
			Int("step", step).
			Str("tool", call.Name).
			Str("model", env.Model).
			Msg("executing tool call")

		// Execution failures are fed back to the model as error-flagged
		// tool output rather than aborting the loop; only an unknown
		// tool aborts.
		result, err := tools.Execute(ctx, *call)
		if err != nil {
			return nil, usage, err
		}

		env = prompt.ForToolContinuation(env, *call, result)
	}

	return nil, usage, ErrMaxToolSteps
}
