// Package mcp implements a Model Context Protocol (MCP) server over a
// Server-Sent Events (SSE) transport. The server exposes a set of named,
// schema-described tools to remote clients through JSON-RPC 2.0 messages
// carried on HTTP POST requests, while the SSE stream provides the
// server-to-client push channel with a connection handshake and periodic
// heartbeats.
//
// Tool implementations live in the servers directory and are plugged into
// the core through a ToolSet registry.
package mcp
