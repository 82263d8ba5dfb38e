package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool handles keyboard key sequences
type PressKeysTool struct {
	calc types.Calculator
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(calc types.Calculator) *PressKeysTool {
	return &PressKeysTool{calc: calc}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Type a sequence of keyboard keys into the calculator, e.g. \"1 2 + 3 Enter\". "+
			"Supported keys: 0-9 . + - * / = Enter Escape Backspace ( ). Other keys are ignored."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Whitespace separated key names")),
		mcp.WithString("session_id", mcp.Description(sessionIDDescription)),
	)
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := splitKeys(mcp.ParseString(req, "keys", ""))
	if len(keys) == 0 {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	sessionID := getSessionID(req)
	snapshot, err := t.calc.PressKeys(sessionID, keys)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press keys: %v", err)), nil
	}

	toolResult := results.PressKeysToolResult{
		Arguments: results.PressKeysToolArgs{
			SessionID: sessionID,
			Keys:      keys,
		},
		Message:       fmt.Sprintf("Pressed %d key(s).", len(keys)),
		DisplayResult: results.NewDisplayResult(snapshot),
	}

	return newJSONResult(toolResult), nil
}
