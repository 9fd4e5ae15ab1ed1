package prompt

import (
	"encoding/json"
	"errors"
	"testing"

	ai "github.com/spetersoncode/relay"
	"github.com/spetersoncode/relay/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *model.Registry {
	return model.New([]model.Descriptor{
		{ID: "chat", Provider: ai.ProviderDeepSeek, TemperatureEnabled: true},
		{ID: "reasoner", Provider: ai.ProviderDeepSeek, TemperatureEnabled: false},
	})
}

func floatPtr(f float64) *float64 { return &f }

func TestBuild(t *testing.T) {
	registry := testRegistry()

	t.Run("orders instructions then history then user turns", func(t *testing.T) {
		env, err := Build(registry, Params{
			Instructions: []string{"be terse", "answer in English"},
			UserTurns:    []string{"earlier question", "new question"},
			HistoryText:  "Message from user: hi",
			Model:        "chat",
		})
		require.NoError(t, err)
		require.Len(t, env.Turns, 5)

		assert.Equal(t, ai.RoleSystem, env.Turns[0].Role)
		assert.Equal(t, "be terse", env.Turns[0].Content)
		assert.Equal(t, ai.RoleSystem, env.Turns[1].Role)
		assert.Equal(t, "answer in English", env.Turns[1].Content)
		assert.Equal(t, ai.RoleSystem, env.Turns[2].Role)
		assert.Equal(t, "Message from user: hi", env.Turns[2].Content)
		assert.Equal(t, ai.RoleUser, env.Turns[3].Role)
		assert.Equal(t, ai.RoleUser, env.Turns[4].Role)
		assert.Equal(t, "new question", env.Turns[4].Content)
	})

	t.Run("omits history turn when empty", func(t *testing.T) {
		env, err := Build(registry, Params{
			Instructions: []string{"sys"},
			UserTurns:    []string{"q"},
			Model:        "chat",
		})
		require.NoError(t, err)
		require.Len(t, env.Turns, 2)
		assert.Equal(t, ai.RoleSystem, env.Turns[0].Role)
		assert.Equal(t, ai.RoleUser, env.Turns[1].Role)
	})

	t.Run("keeps temperature for enabled model", func(t *testing.T) {
		env, err := Build(registry, Params{
			UserTurns:   []string{"q"},
			Model:       "chat",
			Temperature: floatPtr(0.7),
		})
		require.NoError(t, err)
		require.NotNil(t, env.Temperature)
		assert.Equal(t, 0.7, *env.Temperature)
	})

	t.Run("suppresses temperature for disabled model", func(t *testing.T) {
		env, err := Build(registry, Params{
			UserTurns:   []string{"q"},
			Model:       "reasoner",
			Temperature: floatPtr(0.7),
		})
		require.NoError(t, err)
		assert.Nil(t, env.Temperature)
	})

	t.Run("unknown model fails", func(t *testing.T) {
		_, err := Build(registry, Params{UserTurns: []string{"q"}, Model: "nope"})
		var unknown *model.UnknownModelError
		require.True(t, errors.As(err, &unknown))
	})

	t.Run("requires at least one user turn", func(t *testing.T) {
		_, err := Build(registry, Params{Model: "chat"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ai.ErrEmptyInput))
	})

	t.Run("duplicate tool names fail", func(t *testing.T) {
		_, err := Build(registry, Params{
			UserTurns: []string{"q"},
			Model:     "chat",
			Tools: []ai.Tool{
				{Name: "search"},
				{Name: "search"},
			},
		})
		var dup *DuplicateToolError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "search", dup.Name)
	})

	t.Run("passes metadata through", func(t *testing.T) {
		env, err := Build(registry, Params{
			UserTurns:      []string{"q"},
			Model:          "chat",
			SessionKey:     "sess",
			UserID:         "u1",
			ToolChoice:     ai.ToolChoiceRequired,
			ResponseFormat: ai.ResponseFormatJSON,
		})
		require.NoError(t, err)
		assert.Equal(t, "sess", env.SessionKey)
		assert.Equal(t, "u1", env.UserID)
		assert.Equal(t, ai.ToolChoiceRequired, env.ToolChoice)
		assert.Equal(t, ai.ResponseFormatJSON, env.ResponseFormat)
	})

	t.Run("same params build equal envelopes", func(t *testing.T) {
		p := Params{
			Instructions: []string{"sys"},
			UserTurns:    []string{"q"},
			HistoryText:  "h",
			Model:        "chat",
			Temperature:  floatPtr(0.2),
		}
		a, err := Build(registry, p)
		require.NoError(t, err)
		b, err := Build(registry, p)
		require.NoError(t, err)
		assert.Equal(t, a.Turns, b.Turns)
		assert.Equal(t, *a.Temperature, *b.Temperature)
	})
}

func TestForToolContinuation(t *testing.T) {
	registry := testRegistry()

	base, err := Build(registry, Params{
		Instructions: []string{"sys"},
		UserTurns:    []string{"q"},
		Model:        "chat",
		Tools:        []ai.Tool{{Name: "search", Parameters: json.RawMessage(`{}`)}},
		Temperature:  floatPtr(0.3),
		SessionKey:   "sess",
		UserID:       "u1",
	})
	require.NoError(t, err)

	call := ai.ToolCall{ID: "call-1", Name: "search", Arguments: `{"q":"x"}`}
	result := ai.ToolResult{ToolCallID: "call-1", Content: "found it"}

	t.Run("appends tool call and result turns", func(t *testing.T) {
		next := ForToolContinuation(base, call, result)
		require.Len(t, next.Turns, len(base.Turns)+2)

		assistant := next.Turns[len(next.Turns)-2]
		assert.Equal(t, ai.RoleAssistant, assistant.Role)
		require.Len(t, assistant.ToolCalls, 1)
		assert.Equal(t, "call-1", assistant.ToolCalls[0].ID)

		toolTurn := next.Turns[len(next.Turns)-1]
		assert.Equal(t, ai.RoleTool, toolTurn.Role)
		require.Len(t, toolTurn.ToolResults, 1)
		assert.Equal(t, "found it", toolTurn.ToolResults[0].Content)
	})

	t.Run("preserves request metadata", func(t *testing.T) {
		next := ForToolContinuation(base, call, result)
		assert.Equal(t, base.Model, next.Model)
		assert.Equal(t, base.Tools, next.Tools)
		assert.Equal(t, base.SessionKey, next.SessionKey)
		assert.Equal(t, base.UserID, next.UserID)
		require.NotNil(t, next.Temperature)
		assert.Equal(t, *base.Temperature, *next.Temperature)
	})

	t.Run("does not mutate the prior envelope", func(t *testing.T) {
		before := len(base.Turns)
		_ = ForToolContinuation(base, call, result)
		assert.Len(t, base.Turns, before)
	})
}
