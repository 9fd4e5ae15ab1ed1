package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	ai "github.com/spetersoncode/relay"
	"github.com/spetersoncode/relay/tool"
)

// Remote is a connection to an MCP server whose tools can participate
// in the invocation loop. The tool list is cached locally; call
// [Remote.Refresh] if the server's tools change.
//
// Remote is safe for concurrent use.
type Remote struct {
	client *client.Client
	mu     sync.RWMutex
	tools  map[string]ai.Tool
}

// Connect starts an MCP server as a subprocess and connects to it over
// stdio.
func Connect(ctx context.Context, command string, env []string, args ...string) (*Remote, error) {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return nil, fmt.Errorf("mcp: create stdio client: %w", err)
	}
	return connect(ctx, c)
}

// ConnectSSE connects to an MCP server over SSE.
func ConnectSSE(ctx context.Context, baseURL string) (*Remote, error) {
	c, err := client.NewSSEMCPClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("mcp: create sse client: %w", err)
	}
	return connect(ctx, c)
}

func connect(ctx context.Context, c *client.Client) (*Remote, error) {
	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("mcp: start client: %w", err)
	}

	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "relay-mcp-client",
				Version: "1.0.0",
			},
		},
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("mcp: initialize session: %w", err)
	}

	r := &Remote{
		client: c,
		tools:  make(map[string]ai.Tool),
	}
	if err := r.Refresh(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("mcp: list tools: %w", err)
	}
	return r, nil
}

// Close closes the connection to the MCP server.
func (r *Remote) Close() error {
	return r.client.Close()
}

// Refresh re-fetches the server's tool list.
func (r *Remote) Refresh(ctx context.Context) error {
	result, err := r.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tools = make(map[string]ai.Tool, len(result.Tools))
	for _, t := range result.Tools {
		r.tools[t.Name] = FromMCPTool(t)
	}
	return nil
}

// Tools returns the cached tool descriptors.
func (r *Remote) Tools() []ai.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]ai.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		tools = append(tools, t)
	}
	return tools
}

// Execute calls a tool on the remote server. Transport failures are
// reported as error-flagged results rather than errors, so the model
// sees them as tool output.
func (r *Remote) Execute(ctx context.Context, call ai.ToolCall) (string, error) {
	result, err := r.client.CallTool(ctx, toCallRequest(call))
	if err != nil {
		return "", err
	}

	content, isError := resultText(result)
	if isError {
		return "", fmt.Errorf("mcp: tool %s: %s", call.Name, content)
	}
	return content, nil
}

// Bind registers every remote tool into a local registry so remote
// tools flow through the invocation loop like local handlers.
func (r *Remote) Bind(registry *tool.Registry) error {
	for _, t := range r.Tools() {
		if err := registry.Register(t, r.Execute); err != nil {
			return err
		}
	}
	return nil
}
