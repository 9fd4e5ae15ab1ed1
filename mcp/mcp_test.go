package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	ai "github.com/spetersoncode/relay"
	"github.com/spetersoncode/relay/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolConversion(t *testing.T) {
	t.Run("relay tool to MCP tool keeps the raw schema", func(t *testing.T) {
		schema := json.RawMessage(`{"type":"object","properties":{"q":{"type":"string"}}}`)
		mcpTool := ToMCPTool(ai.Tool{Name: "search", Description: "Search the web", Parameters: schema})

		assert.Equal(t, "search", mcpTool.Name)
		assert.Equal(t, "Search the web", mcpTool.Description)
		assert.Equal(t, []byte(schema), []byte(mcpTool.RawInputSchema))
	})

	t.Run("MCP tool to relay tool prefers the raw schema", func(t *testing.T) {
		schema := json.RawMessage(`{"type":"object"}`)
		got := FromMCPTool(mcp.Tool{Name: "calc", Description: "Calculate", RawInputSchema: schema})

		assert.Equal(t, "calc", got.Name)
		assert.Equal(t, "Calculate", got.Description)
		assert.Equal(t, schema, got.Parameters)
	})

	t.Run("MCP tool without raw schema marshals the structured one", func(t *testing.T) {
		got := FromMCPTool(mcp.Tool{
			Name: "noraw",
			InputSchema: mcp.ToolInputSchema{
				Type:       "object",
				Properties: map[string]any{"x": map[string]any{"type": "integer"}},
			},
		})

		var schema map[string]any
		require.NoError(t, json.Unmarshal(got.Parameters, &schema))
		assert.Equal(t, "object", schema["type"])
	})
}

func TestToCallRequest(t *testing.T) {
	t.Run("parses JSON arguments", func(t *testing.T) {
		req := toCallRequest(ai.ToolCall{Name: "search", Arguments: `{"q":"go"}`})
		assert.Equal(t, "search", req.Params.Name)

		args, ok := req.Params.Arguments.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "go", args["q"])
	})

	t.Run("passes non-JSON arguments through as string", func(t *testing.T) {
		req := toCallRequest(ai.ToolCall{Name: "raw", Arguments: "not json"})
		assert.Equal(t, "not json", req.Params.Arguments)
	})

	t.Run("empty arguments stay nil", func(t *testing.T) {
		req := toCallRequest(ai.ToolCall{Name: "empty"})
		assert.Nil(t, req.Params.Arguments)
	})
}

func TestResultText(t *testing.T) {
	t.Run("joins text content blocks", func(t *testing.T) {
		text, isError := resultText(&mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{Type: "text", Text: "line one"},
				mcp.TextContent{Type: "text", Text: "line two"},
			},
		})
		assert.Equal(t, "line one\nline two", text)
		assert.False(t, isError)
	})

	t.Run("error flag carries through", func(t *testing.T) {
		text, isError := resultText(&mcp.CallToolResult{
			Content: []mcp.Content{mcp.TextContent{Type: "text", Text: "boom"}},
			IsError: true,
		})
		assert.Equal(t, "boom", text)
		assert.True(t, isError)
	})

	t.Run("nil result is an error", func(t *testing.T) {
		_, isError := resultText(nil)
		assert.True(t, isError)
	})
}

func TestWrapHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards arguments and returns text", func(t *testing.T) {
		var gotArgs string
		handler := wrapHandler("echo", func(ctx context.Context, call ai.ToolCall) (string, error) {
			gotArgs = call.Arguments
			return "echoed", nil
		})

		result, err := handler(ctx, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "echo",
				Arguments: map[string]any{"msg": "hi"},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.IsError)
		assert.JSONEq(t, `{"msg":"hi"}`, gotArgs)
	})

	t.Run("handler failure becomes an MCP error result", func(t *testing.T) {
		handler := wrapHandler("broken", func(ctx context.Context, call ai.ToolCall) (string, error) {
			return "", errors.New("nope")
		})

		result, err := handler(ctx, mcp.CallToolRequest{})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("nil arguments default to empty object", func(t *testing.T) {
		var gotArgs string
		handler := wrapHandler("noargs", func(ctx context.Context, call ai.ToolCall) (string, error) {
			gotArgs = call.Arguments
			return "", nil
		})

		_, err := handler(ctx, mcp.CallToolRequest{})
		require.NoError(t, err)
		assert.Equal(t, "{}", gotArgs)
	})
}

func TestNewServer(t *testing.T) {
	registry := tool.NewRegistry().Add(
		tool.WithTool(ai.Tool{Name: "a", Parameters: json.RawMessage(`{}`)}, func(ctx context.Context, call ai.ToolCall) (string, error) {
			return "", nil
		}),
	)

	s := NewServer(registry, WithName("test-server"), WithVersion("0.0.1"))
	require.NotNil(t, s)
}
