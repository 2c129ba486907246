package mcpserver

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ByLCY/designkit/logger"
)

// Server exposes the layout engine as MCP tools so agents can synthesize designs.
type Server struct {
	mcp *server.MCPServer
	log *logger.Logger
}

// New creates and configures a new MCP server with all tools.
func New(version string, log *logger.Logger) *Server {
	s := &Server{log: log}
	s.mcp = server.NewMCPServer(
		"designkit",
		version,
		server.WithToolCapabilities(true),
	)
	s.registerResolverTools()
	s.registerLayoutTools()
	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	s.log.Info("starting MCP stdio server")
	return server.ServeStdio(s.mcp)
}

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}
