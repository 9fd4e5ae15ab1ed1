// Package mcp bridges relay tools and the Model Context Protocol.
//
// The bridge runs in both directions:
//
//   - Serve a [tool.Registry] to MCP clients over stdio, so tools
//     registered for the invocation loop are also discoverable by MCP
//     hosts.
//   - Connect to an MCP server with [Remote] and bind its tools into a
//     local registry, so remote tools participate in the invocation
//     loop like any handler.
package mcp

import (
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	ai "github.com/spetersoncode/relay"
)

// ToMCPTool converts a relay tool descriptor to an MCP tool. The
// parameter schema is passed through unmodified as the raw input
// schema.
func ToMCPTool(t ai.Tool) mcp.Tool {
	return mcp.NewToolWithRawSchema(t.Name, t.Description, t.Parameters)
}

// FromMCPTool converts an MCP tool to a relay tool descriptor,
// preferring the raw input schema when the server provides one.
func FromMCPTool(t mcp.Tool) ai.Tool {
	var schema json.RawMessage
	if len(t.RawInputSchema) > 0 {
		schema = t.RawInputSchema
	} else if data, err := json.Marshal(t.InputSchema); err == nil {
		schema = data
	}

	return ai.Tool{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  schema,
	}
}

// toCallRequest converts a relay tool call into an MCP call request.
// Arguments that are not valid JSON are passed through as a string.
func toCallRequest(call ai.ToolCall) mcp.CallToolRequest {
	var args any
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			args = call.Arguments
		}
	}

	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      call.Name,
			Arguments: args,
		},
	}
}

// resultText flattens an MCP call result into text. Non-text content
// blocks and structured content are rendered as JSON.
func resultText(result *mcp.CallToolResult) (string, bool) {
	if result == nil {
		return "", true
	}

	var parts []string
	for _, c := range result.Content {
		switch content := c.(type) {
		case mcp.TextContent:
			parts = append(parts, content.Text)
		case *mcp.TextContent:
			parts = append(parts, content.Text)
		default:
			if data, err := json.Marshal(content); err == nil {
				parts = append(parts, string(data))
			}
		}
	}
	if result.StructuredContent != nil {
		if data, err := json.Marshal(result.StructuredContent); err == nil {
			parts = append(parts, string(data))
		}
	}

	return strings.Join(parts, "\n"), result.IsError
}
