package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewSessionTool handles session creation requests
type NewSessionTool struct {
	calc types.Calculator
}

// NewNewSessionTool creates a new session creation tool
func NewNewSessionTool(calc types.Calculator) *NewSessionTool {
	return &NewSessionTool{calc: calc}
}

// GetTool returns the MCP tool definition
func (t *NewSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolNewSession,
		mcp.WithDescription("Start a new, independent calculator and return its session id"),
	)
}

// Handle processes the tool request
func (t *NewSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := t.calc.NewSession()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create session: %v", err)), nil
	}

	return newJSONResult(results.SessionToolResult{
		SessionID: sessionID,
		Message:   "Session created. Pass session_id to other calculator tools to use it.",
	}), nil
}

// CloseSessionTool handles session close requests
type CloseSessionTool struct {
	calc types.Calculator
}

// NewCloseSessionTool creates a new session close tool
func NewCloseSessionTool(calc types.Calculator) *CloseSessionTool {
	return &CloseSessionTool{calc: calc}
}

// GetTool returns the MCP tool definition
func (t *CloseSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCloseSession,
		mcp.WithDescription("Discard a calculator session and its memory"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id returned by "+ToolNewSession)),
	)
}

// Handle processes the tool request
func (t *CloseSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := mcp.ParseString(req, "session_id", "")
	if sessionID == "" {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}

	if err := t.calc.CloseSession(sessionID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to close session: %v", err)), nil
	}

	return newJSONResult(results.SessionToolResult{
		SessionID: sessionID,
		Message:   "Session closed.",
	}), nil
}
