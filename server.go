package mcp

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Server ties the request dispatcher and the SSE hub to their HTTP surface. The same /sse path
// serves both directions of the protocol: GET opens the long-lived event stream, POST carries
// one JSON-RPC message per call. A /health endpoint reports the server identity.
type Server struct {
	info         Info
	dispatcher   *Dispatcher
	hub          *Hub
	logger       *slog.Logger
	pingInterval time.Duration
}

// Option represents the options for the server.
type Option func(*Server)

// WithLogger sets the logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithPingInterval sets the heartbeat interval for SSE connections. The default is 30 seconds.
func WithPingInterval(interval time.Duration) Option {
	return func(s *Server) {
		s.pingInterval = interval
	}
}

const defaultPingInterval = 30 * time.Second

// healthStatus is the payload of the /health endpoint.
type healthStatus struct {
	Status  string `json:"status"`
	Server  string `json:"server"`
	Version string `json:"version"`
}

// NewServer creates a server exposing the given tool set under the given identity.
func NewServer(info Info, tools *ToolSet, options ...Option) *Server {
	s := &Server{
		info:         info,
		logger:       slog.Default(),
		pingInterval: defaultPingInterval,
	}
	for _, opt := range options {
		opt(s)
	}

	s.dispatcher = NewDispatcher(info, tools, s.logger)
	s.hub = newHub(s.pingInterval, s.logger)

	return s
}

// Router returns the HTTP handler serving the MCP endpoints with permissive CORS,
// so browser-based clients on any origin can connect.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/sse", s.hub.serveStream)
	r.Post("/sse", s.handleMessage)
	r.Get("/health", s.handleHealth)

	return r
}

// Broadcast sends payload to every open SSE connection, pruning the ones whose writes fail.
func (s *Server) Broadcast(payload any) error {
	return s.hub.Broadcast(payload)
}

// Hub returns the broadcast hub owning the server's SSE connections.
func (s *Server) Hub() *Hub {
	return s.hub
}

// handleMessage processes one JSON-RPC request or notification per POST. Undecodable bodies get
// a parse-error envelope with a null id and HTTP 400; every other outcome is either a JSON
// envelope with HTTP 200 or, for notifications, an empty HTTP 204.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var msg JSONRPCMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		s.logger.Warn("failed to decode message", slog.String("err", err.Error()))
		s.writeJSON(w, http.StatusBadRequest, struct {
			JSONRPC string        `json:"jsonrpc"`
			ID      any           `json:"id"`
			Error   *JSONRPCError `json:"error"`
		}{
			JSONRPC: JSONRPCVersion,
			Error: &JSONRPCError{
				Code:    jsonRPCParseErrorCode,
				Message: "Parse error: " + err.Error(),
			},
		})
		return
	}

	resp := s.dispatcher.Dispatch(r.Context(), msg)
	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthStatus{
		Status:  "healthy",
		Server:  s.info.Name,
		Version: s.info.Version,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", slog.String("err", err.Error()))
	}
}
