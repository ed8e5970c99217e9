package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/detail"
	"github.com/ziadkadry99/layermap/internal/diagram"
)

// handleListSections lists the catalog, optionally filtered by tier.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sections := s.cat.All()
	if c := request.GetString("category", ""); c != "" {
		cat := catalog.Category(c)
		if !cat.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", c)), nil
		}
		sections = s.cat.ByCategory(cat)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d section(s):\n", len(sections)))
	for _, sec := range sections {
		sb.WriteString(fmt.Sprintf("- %s: %s (%s)\n", sec.ID, sec.Title, sec.Category))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetSection returns the detail panel of one section. Unknown ids
// produce the not-found placeholder rather than an error.
func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	panel := detail.Build(s.cat, catalog.SectionID(id))
	switch request.GetString("format", "markdown") {
	case "json":
		data, err := json.MarshalIndent(panel, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding section: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	case "markdown":
		return mcp.NewToolResultText(detail.Markdown(panel, s.imageBase)), nil
	default:
		return mcp.NewToolResultError("format must be markdown or json"), nil
	}
}

// handleGetDiagram returns the layer diagram as an edge list or as SVG.
func (s *Server) handleGetDiagram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch request.GetString("format", "edges") {
	case "edges":
		return mcp.NewToolResultText(formatEdges(s.cat, s.layout)), nil
	case "svg":
		return mcp.NewToolResultText(string(diagram.Markup(s.layout, diagram.Options{}))), nil
	default:
		return mcp.NewToolResultError("format must be edges or svg"), nil
	}
}

// formatEdges renders every connection on its own line, e.g.
// "frontend-controller -> backend-controller [indigo, thick] DTOs".
func formatEdges(cat *catalog.Catalog, l diagram.Layout) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d layers, %d connections:\n", len(l.Nodes), len(l.Edges)))
	for _, e := range l.Edges {
		attrs := string(e.Color)
		if e.Thick {
			attrs += ", thick"
		}
		from, _ := l.NodeAt(e.From)
		to, _ := l.NodeAt(e.To)
		sb.WriteString(fmt.Sprintf("%s -> %s [%s]", from.ID, to.ID, attrs))
		if e.Label != "" {
			sb.WriteString(" " + e.Label)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nLayers:\n")
	for _, n := range l.Nodes {
		title := n.Name
		if sec, ok := cat.Get(n.ID); ok {
			title = sec.Title
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", n.ID, title))
	}
	return sb.String()
}
