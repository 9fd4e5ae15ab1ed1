package ask

import (
	"context"
	"errors"
	"testing"

	ai "github.com/spetersoncode/relay"
	"github.com/spetersoncode/relay/dispatch"
	"github.com/spetersoncode/relay/model"
	"github.com/spetersoncode/relay/store"
	"github.com/spetersoncode/relay/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedDispatcher returns canned completions in order, recording every
// envelope it receives. Once the script is exhausted the last entry
// repeats.
type scriptedDispatcher struct {
	script    []*ai.RawCompletion
	err       error
	envelopes []*ai.Envelope
}

func (d *scriptedDispatcher) Ask(_ context.Context, env *ai.Envelope) (*ai.RawCompletion, error) {
	d.envelopes = append(d.envelopes, env)
	if d.err != nil {
		return nil, d.err
	}
	i := len(d.envelopes) - 1
	if i >= len(d.script) {
		i = len(d.script) - 1
	}
	return d.script[i], nil
}

func testRegistry() *model.Registry {
	return model.New([]model.Descriptor{
		{ID: "deepseek-chat", Provider: ai.ProviderDeepSeek, InputPerMillion: 0.27, OutputPerMillion: 1.10, TemperatureEnabled: true},
		{ID: "deepseek-reasoner", Provider: ai.ProviderDeepSeek, TemperatureEnabled: false},
	})
}

func completed(content string, in, out int) *ai.RawCompletion {
	return &ai.RawCompletion{
		FinishReason: ai.FinishCompleted,
		Content:      content,
		Usage:        ai.Usage{InputTokens: in, OutputTokens: out},
	}
}

func toolRequested(call ai.ToolCall, in, out int) *ai.RawCompletion {
	return &ai.RawCompletion{
		FinishReason: ai.FinishToolCall,
		ToolCall:     &call,
		Usage:        ai.Usage{InputTokens: in, OutputTokens: out},
	}
}

func TestExecuteCompletes(t *testing.T) {
	ctx := context.Background()

	t.Run("persists result and returns identifier only", func(t *testing.T) {
		dispatcher := &scriptedDispatcher{script: []*ai.RawCompletion{
			completed("plain answer", 120, 40),
		}}
		results := store.NewResultStore()
		o := New(dispatcher, results, testRegistry())

		id, err := o.Execute(ctx, []string{"what is up"}, "user-1", "deepseek-chat")
		require.NoError(t, err)
		require.NotEmpty(t, id)

		result, err := results.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "plain answer", result.Response)
		assert.Equal(t, "deepseek-chat", result.Model)
		assert.Equal(t, 120, result.InputTokens)
		assert.Equal(t, 40, result.OutputTokens)
		assert.Equal(t, 160, result.TotalTokens)
		assert.False(t, result.IsError)

		owner, ok := results.Owner(id)
		assert.True(t, ok)
		assert.Equal(t, "user-1", owner)
	})

	t.Run("JSON payload is parsed", func(t *testing.T) {
		dispatcher := &scriptedDispatcher{script: []*ai.RawCompletion{
			completed(`{"answer": 42}`, 10, 5),
		}}
		results := store.NewResultStore()
		o := New(dispatcher, results, testRegistry())

		id, err := o.Execute(ctx, []string{"q"}, "u", "deepseek-chat")
		require.NoError(t, err)

		result, err := results.Get(ctx, id)
		require.NoError(t, err)
		parsed, ok := result.Response.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(42), parsed["answer"])
	})

	t.Run("invalid JSON falls back to raw text", func(t *testing.T) {
		dispatcher := &scriptedDispatcher{script: []*ai.RawCompletion{
			completed(`{"answer": 42`, 10, 5),
		}}
		results := store.NewResultStore()
		o := New(dispatcher, results, testRegistry())

		id, err := o.Execute(ctx, []string{"q"}, "u", "deepseek-chat")
		require.NoError(t, err)

		result, err := results.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, `{"answer": 42`, result.Response)
	})

	t.Run("prompt is stored on the result", func(t *testing.T) {
		dispatcher := &scriptedDispatcher{script: []*ai.RawCompletion{completed("ok", 1, 1)}}
		results := store.NewResultStore()
		o := New(dispatcher, results, testRegistry())

		id, err := o.Execute(ctx, []string{"the question"}, "u", "deepseek-chat",
			WithInstructions("be helpful"))
		require.NoError(t, err)

		result, err := results.Get(ctx, id)
		require.NoError(t, err)
		require.Len(t, result.Prompt, 2)
		assert.Equal(t, ai.RoleSystem, result.Prompt[0].Role)
		assert.Equal(t, "the question", result.Prompt[1].Content)
	})
}

func TestExecuteToolLoop(t *testing.T) {
	ctx := context.Background()

	t.Run("tool round then completion", func(t *testing.T) {
		executed := 0
		tools := tool.NewRegistry().Add(
			tool.WithTool(ai.Tool{Name: "lookup"}, func(ctx context.Context, call ai.ToolCall) (string, error) {
				executed++
				return "42 degrees", nil
			}),
		)

		dispatcher := &scriptedDispatcher{script: []*ai.RawCompletion{
			toolRequested(ai.ToolCall{ID: "c1", Name: "lookup", Arguments: `{}`}, 100, 20),
			completed("final answer", 150, 30),
		}}
		results := store.NewResultStore()
		o := New(dispatcher, results, testRegistry())

		id, err := o.Execute(ctx, []string{"q"}, "u", "deepseek-chat", WithTools(tools))
		require.NoError(t, err)
		assert.Equal(t, 1, executed)

		result, err := results.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "final answer", result.Response)
		assert.False(t, result.IsError)

		// Usage accumulates across both round trips.
		assert.Equal(t, 250, result.InputTokens)
		assert.Equal(t, 50, result.OutputTokens)
		assert.Equal(t, 300, result.TotalTokens)

		// The second round carries the tool exchange.
		require.Len(t, dispatcher.envelopes, 2)
		second := dispatcher.envelopes[1]
		require.Len(t, second.Turns, 3)
		assert.Equal(t, ai.RoleAssistant, second.Turns[1].Role)
		assert.Equal(t, ai.RoleTool, second.Turns[2].Role)
		assert.Equal(t, "42 degrees", second.Turns[2].ToolResults[0].Content)
	})

	t.Run("tool handler failure is fed back as error output", func(t *testing.T) {
		tools := tool.NewRegistry().Add(
			tool.WithTool(ai.Tool{Name: "flaky"}, func(ctx context.Context, call ai.ToolCall) (string, error) {
				return "", errors.New("backend down")
			}),
		)

		dispatcher := &scriptedDispatcher{script: []*ai.RawCompletion{
			toolRequested(ai.ToolCall{ID: "c1", Name: "flaky", Arguments: `{}`}, 10, 2),
			completed("recovered", 20, 4),
		}}
		results := store.NewResultStore()
		o := New(dispatcher, results, testRegistry())

		id, err := o.Execute(ctx, []string{"q"}, "u", "deepseek-chat", WithTools(tools))
		require.NoError(t, err)

		result, err := results.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "recovered", result.Response)
		assert.False(t, result.IsError)

		second := dispatcher.envelopes[1]
		toolTurn := second.Turns[len(second.Turns)-1]
		require.Len(t, toolTurn.ToolResults, 1)
		assert.True(t, toolTurn.ToolResults[0].IsError)
		assert.Equal(t, "backend down", toolTurn.ToolResults[0].Content)
	})

	t.Run("endless tool requests fail closed to fallback", func(t *testing.T) {
		tools := tool.NewRegistry().Add(
			tool.WithTool(ai.Tool{Name: "lookup"}, func(ctx context.Context, call ai.ToolCall) (string, error) {
				return "again", nil
			}),
		)

		dispatcher := &scriptedDispatcher{script: []*ai.RawCompletion{
			toolRequested(ai.ToolCall{ID: "c", Name: "lookup", Arguments: `{}`}, 5, 1),
		}}
		results := store.NewResultStore()
		o := New(dispatcher, results, testRegistry(), WithMaxToolSteps(3))

		id, err := o.Execute(ctx, []string{"q"}, "u", "deepseek-chat", WithTools(tools))
		require.NoError(t, err)
		assert.Len(t, dispatcher.envelopes, 3)

		result, err := results.Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Zero(t, result.TotalTokens)
	})

	t.Run("unknown tool propagates", func(t *testing.T) {
		dispatcher := &scriptedDispatcher{script: []*ai.RawCompletion{
			toolRequested(ai.ToolCall{ID: "c", Name: "ghost", Arguments: `{}`}, 5, 1),
		}}
		results := store.NewResultStore()
		o := New(dispatcher, results, testRegistry())

		_, err := o.Execute(ctx, []string{"q"}, "u", "deepseek-chat", WithTools(tool.NewRegistry()))
		var notFound *tool.ErrToolNotFound
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "ghost", notFound.Name)
	})
}

func TestExecuteFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("gateway failure degrades to apology", func(t *testing.T) {
		dispatcher := &scriptedDispatcher{err: &dispatch.GatewayError{
			Model: "deepseek-chat",
			Cause: errors.New("rate limited"),
		}}
		results := store.NewResultStore()
		o := New(dispatcher, results, testRegistry())

		id, err := o.Execute(ctx, []string{"hello"}, "u", "deepseek-chat")
		require.NoError(t, err)

		result, err := results.Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Zero(t, result.InputTokens)
		assert.Zero(t, result.OutputTokens)
		assert.Zero(t, result.TotalTokens)
		assert.Equal(t, "deepseek-chat", result.Model)
		assert.Contains(t, apologies, result.Response)

		// Prompt of the failed request is preserved.
		require.Len(t, result.Prompt, 1)
		assert.Equal(t, "hello", result.Prompt[0].Content)
	})

	t.Run("unknown model propagates instead of degrading", func(t *testing.T) {
		dispatcher := &scriptedDispatcher{script: []*ai.RawCompletion{completed("x", 1, 1)}}
		o := New(dispatcher, store.NewResultStore(), testRegistry())

		_, err := o.Execute(ctx, []string{"q"}, "u", "no-such-model")
		var unknown *model.UnknownModelError
		require.True(t, errors.As(err, &unknown))
		assert.Empty(t, dispatcher.envelopes)
	})
}

func TestFallbackBuild(t *testing.T) {
	env := &ai.Envelope{
		Model: "deepseek-chat",
		Turns: []ai.Message{{Role: ai.RoleUser, Content: "q"}},
	}

	t.Run("selects each apology from the pool", func(t *testing.T) {
		for i := range apologies {
			f := &Fallback{pick: func(int) int { return i }}
			result := f.Build(env)
			assert.Equal(t, apologies[i], result.Response)
			assert.True(t, result.IsError)
			assert.Zero(t, result.TotalTokens)
		}
	})

	t.Run("copies turns rather than sharing them", func(t *testing.T) {
		f := NewFallback()
		result := f.Build(env)
		require.Len(t, result.Prompt, 1)
		result.Prompt[0].Content = "mutated"
		assert.Equal(t, "q", env.Turns[0].Content)
	})
}
