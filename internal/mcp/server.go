package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/diagram"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the LayerMap catalog and
// diagram to AI agents.
type Server struct {
	cat       *catalog.Catalog
	layout    diagram.Layout
	imageBase string
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server over cat. imageBase resolves relative
// illustration paths in section documents; it may be empty.
func NewServer(cat *catalog.Catalog, imageBase string) *Server {
	s := &Server{
		cat:       cat,
		layout:    diagram.Default(),
		imageBase: imageBase,
	}

	s.mcp = server.NewMCPServer(
		"layermap",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(getSectionTool, s.handleGetSection)
	s.mcp.AddTool(getDiagramTool, s.handleGetDiagram)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
