package relay

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	t.Run("total sums input and output", func(t *testing.T) {
		u := Usage{InputTokens: 120, OutputTokens: 40}
		assert.Equal(t, 160, u.Total())
	})

	t.Run("add accumulates", func(t *testing.T) {
		u := Usage{InputTokens: 100, OutputTokens: 20}
		u.Add(Usage{InputTokens: 50, OutputTokens: 10})
		assert.Equal(t, 150, u.InputTokens)
		assert.Equal(t, 30, u.OutputTokens)
		assert.Equal(t, 180, u.Total())
	})
}

func TestEnvelope(t *testing.T) {
	env := &Envelope{
		Turns: []Message{{Role: RoleUser, Content: "q"}},
		Tools: []Tool{{Name: "search"}, {Name: "calc"}},
	}

	t.Run("ToolByName finds registered tools", func(t *testing.T) {
		tool, ok := env.ToolByName("calc")
		assert.True(t, ok)
		assert.Equal(t, "calc", tool.Name)

		_, ok = env.ToolByName("nope")
		assert.False(t, ok)
	})

	t.Run("CloneTurns is independent of the original", func(t *testing.T) {
		turns := env.CloneTurns()
		turns[0].Content = "mutated"
		assert.Equal(t, "q", env.Turns[0].Content)
	})
}

func TestNewToolResultMessage(t *testing.T) {
	msg := NewToolResultMessage(ToolResult{ToolCallID: "c1", Content: "out"})
	assert.Equal(t, RoleTool, msg.Role)
	require.Len(t, msg.ToolResults, 1)
	assert.Equal(t, "out", msg.ToolResults[0].Content)
}

func TestProviderError(t *testing.T) {
	cause := errors.New("timeout")
	err := NewProviderError(ProviderAnthropic, "chat", cause)

	assert.True(t, IsProviderError(err))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "anthropic")
	assert.False(t, IsProviderError(cause))
}

type schemaArgs struct {
	Query string   `json:"query" desc:"Search query" required:"true"`
	Mode  string   `json:"mode" enum:"web,news"`
	Limit int      `json:"limit" desc:"Max results"`
	Tags  []string `json:"tags"`
	Deep  bool     `json:"deep"`
}

func TestSchemaFor(t *testing.T) {
	t.Run("generates object schema from tags", func(t *testing.T) {
		raw, err := SchemaFor[schemaArgs]()
		require.NoError(t, err)

		var schema map[string]any
		require.NoError(t, json.Unmarshal(raw, &schema))

		assert.Equal(t, "object", schema["type"])

		properties, ok := schema["properties"].(map[string]any)
		require.True(t, ok)
		assert.Len(t, properties, 5)

		query := properties["query"].(map[string]any)
		assert.Equal(t, "string", query["type"])
		assert.Equal(t, "Search query", query["description"])

		mode := properties["mode"].(map[string]any)
		assert.ElementsMatch(t, []any{"web", "news"}, mode["enum"])

		limit := properties["limit"].(map[string]any)
		assert.Equal(t, "integer", limit["type"])

		tags := properties["tags"].(map[string]any)
		assert.Equal(t, "array", tags["type"])

		required, ok := schema["required"].([]any)
		require.True(t, ok)
		assert.Equal(t, []any{"query"}, required)
	})

	t.Run("rejects non-struct types", func(t *testing.T) {
		_, err := SchemaFor[int]()
		assert.Error(t, err)
	})

	t.Run("MustSchemaFor panics on bad types", func(t *testing.T) {
		assert.Panics(t, func() {
			MustSchemaFor[string]()
		})
	})
}
