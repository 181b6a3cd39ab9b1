// Package starclass is a small demo tool set for the MCP server: a fixed star catalog, a
// spectral classifier, and a playful mood generator. It exercises the full protocol without
// touching any external service.
package starclass

import (
	"math/rand/v2"

	mcp "github.com/starbeam-labs/github-star-mcp"
)

// Server builds the star classification tool set.
type Server struct {
	// pick selects the mood index; replaced in tests for determinism.
	pick func(n int) int
}

// NewServer creates a star classification tool server.
func NewServer() *Server {
	return &Server{pick: rand.IntN}
}

// ToolSet returns the registry of star classification tools.
func (s *Server) ToolSet() *mcp.ToolSet {
	ts := mcp.NewToolSet()

	ts.Register(mcp.Tool{
		Name:        "get_star_info",
		Description: "Look up a star in the built-in catalog.",
		InputSchema: getStarInfoSchema,
	}, s.getStarInfo)

	ts.Register(mcp.Tool{
		Name:        "classify_star",
		Description: "Classify a star by surface temperature and luminosity.",
		InputSchema: classifyStarSchema,
	}, s.classifyStar)

	ts.Register(mcp.Tool{
		Name:        "get_mood",
		Description: "Ask how someone is feeling today.",
		InputSchema: getMoodSchema,
	}, s.getMood)

	return ts
}
