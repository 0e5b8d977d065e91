// Package mcp exposes the Auralis pipeline over the Model Context
// Protocol so external AI agents can chat, classify, and query the
// knowledge base through stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/limitless-infotech/auralis/internal/auralis"
	"github.com/limitless-infotech/auralis/internal/enterprise"
	"github.com/limitless-infotech/auralis/internal/knowledge"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the chat pipeline as tools.
type Server struct {
	pipeline  *auralis.Pipeline
	knowledge *knowledge.Store
	interp    *enterprise.Interpreter
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
// knowledge and interp may be nil; the corresponding tools then report
// themselves unavailable.
func NewServer(pipeline *auralis.Pipeline, ks *knowledge.Store, interp *enterprise.Interpreter) *Server {
	s := &Server{
		pipeline:  pipeline,
		knowledge: ks,
		interp:    interp,
	}

	s.mcp = server.NewMCPServer(
		"auralis",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(askAuralisTool, s.handleAskAuralis)
	s.mcp.AddTool(classifyIntentTool, s.handleClassifyIntent)
	s.mcp.AddTool(searchKnowledgeTool, s.handleSearchKnowledge)
	s.mcp.AddTool(portalCommandTool, s.handlePortalCommand)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
