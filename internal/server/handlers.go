package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/agentdesk/macpilot/internal/automation"
	"github.com/agentdesk/macpilot/internal/model"
)

// treeJSON serializes an element tree for the wire: a JSON array of nodes
// with element_id, description, and children fields.
func treeJSON(elements []model.Element) string {
	if elements == nil {
		elements = []model.Element{}
	}
	b, err := json.Marshal(elements)
	if err != nil {
		return fmt.Sprintf("[] (serialization failed: %v)", err)
	}
	return string(b)
}

// toolError renders any automation failure as a tool error result. Errors
// never cross the RPC boundary as exceptions.
func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	s.log.Warn("tool call failed", zap.String("tool", tool), zap.Error(err))
	return mcp.NewToolResultError(err.Error())
}

func (s *Server) handleOpenApplication(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appID, err := requireString(request.GetArguments(), "application-identifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tree, err := s.svc.Scan(appID)
	if err != nil {
		return s.toolError("open_application", err), nil
	}
	return mcp.NewToolResultText(treeJSON(tree)), nil
}

func (s *Server) handleReadTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appID, err := requireString(request.GetArguments(), "application-identifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tree, err := s.svc.Scan(appID)
	if err != nil {
		return s.toolError("read_ui_tree", err), nil
	}
	return mcp.NewToolResultText(treeJSON(tree)), nil
}

// actionText renders an action result as a status line followed by the
// refreshed tree.
func actionText(result *automation.ActionResult) string {
	return result.Message + "\n" + treeJSON(result.Tree)
}

func (s *Server) handleClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	appID, err := requireString(params, "application-identifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	elementID, err := requireString(params, "element-id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := s.svc.Click(appID, elementID)
	if err != nil {
		return s.toolError("click_element", err), nil
	}
	return mcp.NewToolResultText(actionText(result)), nil
}

func (s *Server) handleSetText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	appID, err := requireString(params, "application-identifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	elementID, err := requireString(params, "element-id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := requireString(params, "text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := s.svc.SetText(appID, elementID, text)
	if err != nil {
		return s.toolError("set_element_text", err), nil
	}
	return mcp.NewToolResultText(actionText(result)), nil
}

func (s *Server) handleRefreshElement(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	appID, err := requireString(params, "application-identifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	elementID, err := requireString(params, "element-id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	subtree, err := s.svc.UpdateSubtree(appID, elementID)
	if err != nil {
		return s.toolError("refresh_element", err), nil
	}
	return mcp.NewToolResultText(treeJSON(subtree)), nil
}

func (s *Server) handleListApplications(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	apps, err := s.svc.ListApplications()
	if err != nil {
		return s.toolError("list_applications", err), nil
	}
	b, err := json.Marshal(apps)
	if err != nil {
		return s.toolError("list_applications", err), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleCleanup(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.svc.Cleanup()
	return mcp.NewToolResultText("Session state cleared; all element IDs are invalid."), nil
}
