package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Dispatcher routes decoded JSON-RPC messages to the session handshake, the tool registry, and
// the tool handlers, and converts every outcome into a JSON-RPC envelope. It never lets a
// failure escape to the transport layer: handler errors, unknown tool names, and panics inside
// dispatch all become internal-error envelopes.
type Dispatcher struct {
	info    Info
	session *session
	tools   *ToolSet
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher serving the given tool set under the given server identity.
func NewDispatcher(info Info, tools *ToolSet, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		info:    info,
		session: newSession(),
		tools:   tools,
		logger:  logger,
	}
}

// Dispatch handles one inbound message and returns the response envelope, or nil when the
// message requires no response. A message without an ID is a notification and always yields nil,
// even when its method is unknown; a message with an ID yields exactly one envelope carrying the
// same ID.
func (d *Dispatcher) Dispatch(ctx context.Context, msg JSONRPCMessage) (resp *JSONRPCMessage) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("panic during dispatch",
				slog.String("method", msg.Method),
				slog.Any("panic", r))
			resp = d.errorResponse(msg, jsonRPCInternalErrorCode, fmt.Sprintf("Internal error: %v", r))
		}
	}()

	d.logger.Debug("dispatching message",
		slog.String("method", msg.Method),
		slog.String("id", string(msg.ID)))

	var result any

	switch msg.Method {
	case MethodInitialize:
		var params initializeParams
		if len(msg.Params) > 0 {
			// A malformed capabilities object is not fatal; the handshake proceeds
			// with whatever could be decoded.
			if err := json.Unmarshal(msg.Params, &params); err != nil {
				d.logger.Warn("failed to decode initialize params", slog.String("err", err.Error()))
			}
		}
		result = d.session.handleInitialize(d.info, params)
	case MethodInitialized:
		d.session.handleInitialized()
		return nil
	case MethodToolsList:
		result = listToolsResult{Tools: d.tools.Tools()}
	case MethodToolsCall:
		var err error
		result, err = d.callTool(ctx, msg)
		if err != nil {
			d.logger.Error("tool call failed",
				slog.String("id", string(msg.ID)),
				slog.String("err", err.Error()))
			return d.errorResponse(msg, jsonRPCInternalErrorCode, fmt.Sprintf("Error calling tool: %s", err))
		}
	default:
		return d.errorResponse(msg, jsonRPCMethodNotFoundCode, fmt.Sprintf("Method not found: %s", msg.Method))
	}

	if msg.ID == "" {
		return nil
	}

	resultBs, err := json.Marshal(result)
	if err != nil {
		return d.errorResponse(msg, jsonRPCInternalErrorCode, fmt.Sprintf("Internal error: %s", err))
	}

	return &JSONRPCMessage{
		JSONRPC: JSONRPCVersion,
		ID:      msg.ID,
		Result:  resultBs,
	}
}

func (d *Dispatcher) callTool(ctx context.Context, msg JSONRPCMessage) (callToolResult, error) {
	var params callToolParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return callToolResult{}, fmt.Errorf("failed to decode tools/call params: %w", err)
	}

	content, err := d.tools.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		return callToolResult{}, err
	}
	if content == nil {
		content = []Content{}
	}

	return callToolResult{Content: content}, nil
}

// errorResponse builds an error envelope echoing the request ID, or nil for notifications,
// preserving the rule that a message without an ID never produces a response.
func (d *Dispatcher) errorResponse(msg JSONRPCMessage, code int, message string) *JSONRPCMessage {
	if msg.ID == "" {
		return nil
	}
	return &JSONRPCMessage{
		JSONRPC: JSONRPCVersion,
		ID:      msg.ID,
		Error: &JSONRPCError{
			Code:    code,
			Message: message,
		},
	}
}
