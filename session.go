package mcp

import "sync"

// session tracks the initialization lifecycle of the serving process. The state moves in one
// direction only, from uninitialized to initialized, and there is no reset.
//
// The initialize request stores the client's declared capabilities and answers with the server's
// identity, but it does not move the state; only the initialized notification does that. Tool
// methods are not gated on the state: tools/list and tools/call are accepted before the
// handshake completes.
type session struct {
	mu                 sync.Mutex
	initialized        bool
	clientCapabilities map[string]any
}

func newSession() *session {
	return &session{}
}

// handleInitialize records the client capabilities and returns the handshake result.
func (s *session) handleInitialize(info Info, params initializeParams) initializeResult {
	s.mu.Lock()
	s.clientCapabilities = params.Capabilities
	s.mu.Unlock()

	return initializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: ServerCapabilities{
			Tools:   &ToolsCapability{},
			Logging: &LoggingCapability{},
		},
		ServerInfo: info,
	}
}

// handleInitialized moves the session to the initialized state. The transition is one-way.
func (s *session) handleInitialized() {
	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()
}

func (s *session) isInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}
