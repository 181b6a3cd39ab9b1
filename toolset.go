package mcp

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownTool is returned by ToolSet.Call when no handler is registered under the requested name.
var ErrUnknownTool = errors.New("unknown tool")

// ToolHandler executes a single named tool. Implementations are expected to validate their own
// required arguments and to report collaborator failures (not found, forbidden, network errors)
// as plain text content with a nil error, so the failure stays inside a successful JSON-RPC
// envelope. A non-nil error is treated as an internal fault by the dispatcher and surfaces as a
// protocol-level error instead.
type ToolHandler func(ctx context.Context, args map[string]any) ([]Content, error)

// ToolSet is the registry of tools a server exposes. It pairs every descriptor with its handler
// at registration time, so the set of names tools/list advertises can never diverge from the set
// of names tools/call can dispatch. Enumeration order is the registration order and stays fixed
// for the process lifetime; the set is meant to be fully built before the server starts serving.
type ToolSet struct {
	tools    []Tool
	handlers map[string]ToolHandler
}

// NewToolSet creates an empty tool registry.
func NewToolSet() *ToolSet {
	return &ToolSet{
		handlers: make(map[string]ToolHandler),
	}
}

// Register adds a tool and its handler to the set. Registering a name twice replaces the
// previous handler and descriptor while keeping the original enumeration position.
func (ts *ToolSet) Register(tool Tool, handler ToolHandler) {
	if _, ok := ts.handlers[tool.Name]; ok {
		for i := range ts.tools {
			if ts.tools[i].Name == tool.Name {
				ts.tools[i] = tool
				break
			}
		}
	} else {
		ts.tools = append(ts.tools, tool)
	}
	ts.handlers[tool.Name] = handler
}

// Tools returns all registered descriptors in registration order.
func (ts *ToolSet) Tools() []Tool {
	tools := make([]Tool, len(ts.tools))
	copy(tools, ts.tools)
	return tools
}

// Call invokes the handler registered under name. It returns ErrUnknownTool (wrapped with the
// requested name) when the name is not registered.
func (ts *ToolSet) Call(ctx context.Context, name string, args map[string]any) ([]Content, error) {
	handler, ok := ts.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return handler(ctx, args)
}
