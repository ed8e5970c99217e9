package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List the architecture layers in LayerMap with their ids, titles and tiers."),
	mcp.WithString("category",
		mcp.Description("Only list sections of this tier"),
		mcp.Enum("frontend", "backend"),
	),
)

// getSectionTool defines the get_section MCP tool.
var getSectionTool = mcp.NewTool("get_section",
	mcp.WithDescription("Get the full explanation of one layer: description, responsibilities, key principles and a code example."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Section id, e.g. backend-service"),
	),
	mcp.WithString("format",
		mcp.Description("Output format (default markdown)"),
		mcp.Enum("markdown", "json"),
	),
)

// getDiagramTool defines the get_diagram MCP tool.
var getDiagramTool = mcp.NewTool("get_diagram",
	mcp.WithDescription("Get the layer diagram showing how the frontend and backend layers connect."),
	mcp.WithString("format",
		mcp.Description("edges lists every connection as text, svg returns the drawing (default edges)"),
		mcp.Enum("edges", "svg"),
	),
)
