// ABOUTME: MCP server setup for the fitlog activity store.
// ABOUTME: Wraps MCP server with repository, preference, and suggestion access.
package mcp

import (
	"context"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/prefs"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/harperreed/fitlog/internal/suggest"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with fitlog data access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	prefs     *prefs.Store
	fetcher   suggest.Fetcher
	weightKg  float64
}

// NewServer creates a new MCP server over the given stores. weightKg
// personalizes calorie estimation for logged activities; pass 0 to use
// the assumed default.
func NewServer(repo storage.Repository, prefStore *prefs.Store, fetcher suggest.Fetcher, weightKg float64) (*Server, error) {
	if weightKg <= 0 {
		weightKg = models.AssumedWeightKg
	}
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		prefs:     prefStore,
		fetcher:   fetcher,
		weightKg:  weightKg,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
