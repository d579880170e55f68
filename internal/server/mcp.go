// Package server exposes the automation service as MCP tools.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/agentdesk/macpilot/internal/automation"
	"github.com/agentdesk/macpilot/internal/config"
)

// Server wraps the MCP server around the automation service. All state
// lives in the service; the server only translates tool calls.
type Server struct {
	svc *automation.Service
	log *zap.Logger
	mcp *mcpserver.MCPServer
}

// New creates and configures an MCP server with all macpilot tools.
func New(svc *automation.Service, log *zap.Logger) *Server {
	s := &Server{
		svc: svc,
		log: log,
		mcp: mcpserver.NewMCPServer("macpilot", "1.0.0"),
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg *config.Config) error {
	s.log.Info("starting MCP server", zap.String("transport", cfg.Transport))
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.HTTPPort))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("open_application",
			mcp.WithDescription("Open a macOS application by bundle identifier, wait until it is running and frontmost, and return its simplified UI tree. Element IDs in the tree are used by the click/text/refresh tools and are invalidated by the next full scan."),
			mcp.WithString("application-identifier", mcp.Description("Bundle identifier, e.g. 'com.apple.Safari'"), mcp.Required()),
		),
		s.handleOpenApplication,
	)

	s.mcp.AddTool(
		mcp.NewTool("read_ui_tree",
			mcp.WithDescription("Re-scan an application's frontmost window and menu bar and return a fresh UI tree. Clears and reissues all element IDs."),
			mcp.WithString("application-identifier", mcp.Description("Bundle identifier of the target application"), mcp.Required()),
		),
		s.handleReadTree,
	)

	s.mcp.AddTool(
		mcp.NewTool("click_element",
			mcp.WithDescription("Click a UI element by its element ID from a prior scan. Returns a status message and the refreshed UI tree of whichever application is frontmost afterwards."),
			mcp.WithString("application-identifier", mcp.Description("Bundle identifier of the target application"), mcp.Required()),
			mcp.WithString("element-id", mcp.Description("Element ID from a prior scan, e.g. 'element_12'"), mcp.Required()),
		),
		s.handleClick,
	)

	s.mcp.AddTool(
		mcp.NewTool("set_element_text",
			mcp.WithDescription("Type text into a text-entry element and submit it with Return. Returns a status message and the application's refreshed UI tree."),
			mcp.WithString("application-identifier", mcp.Description("Bundle identifier of the target application"), mcp.Required()),
			mcp.WithString("element-id", mcp.Description("Element ID of a text field, search field, text area, or combo box"), mcp.Required()),
			mcp.WithString("text", mcp.Description("Text to enter"), mcp.Required()),
		),
		s.handleSetText,
	)

	s.mcp.AddTool(
		mcp.NewTool("refresh_element",
			mcp.WithDescription("Re-acquire one element's subtree at a deeper depth and splice it into the stored tree. Returns only the refreshed subtree; its nodes carry fresh element IDs."),
			mcp.WithString("application-identifier", mcp.Description("Bundle identifier of the target application"), mcp.Required()),
			mcp.WithString("element-id", mcp.Description("Element ID whose subtree to refresh"), mcp.Required()),
		),
		s.handleRefreshElement,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_applications",
			mcp.WithDescription("List running applications with their bundle identifiers."),
		),
		s.handleListApplications,
	)

	s.mcp.AddTool(
		mcp.NewTool("cleanup",
			mcp.WithDescription("Discard all element IDs and stored trees. Use between independent agent sessions."),
		),
		s.handleCleanup,
	)
}
