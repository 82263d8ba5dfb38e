package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressTool handles single keypad button presses
type PressTool struct {
	calc types.Calculator
}

// NewPressTool creates a new press tool
func NewPressTool(calc types.Calculator) *PressTool {
	return &PressTool{calc: calc}
}

// GetTool returns the MCP tool definition
func (t *PressTool) GetTool() mcp.Tool {
	actions := calculator.AllActions()
	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = action.String()
	}

	return mcp.NewTool(ToolPress,
		mcp.WithDescription("Press one calculator button and return the updated two-line display. "+
			"Operations chain left to right without precedence, like a pocket calculator."),
		mcp.WithString("action", mcp.Required(), mcp.Enum(names...), mcp.Description("Button to press")),
		mcp.WithString("payload", mcp.Description("Digit 0-9, required when action is 'digit'")),
		mcp.WithString("session_id", mcp.Description(sessionIDDescription)),
	)
}

// Handle processes the tool request
func (t *PressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action := mcp.ParseString(req, "action", "")
	if action == "" {
		return mcp.NewToolResultError("action parameter is required"), nil
	}
	payload := mcp.ParseString(req, "payload", "")
	if calculator.ActionID(action) == calculator.ActionDigit && payload == "" {
		return mcp.NewToolResultError("payload parameter is required for digit"), nil
	}

	sessionID := getSessionID(req)
	snapshot, err := t.calc.Dispatch(sessionID, action, payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press %s: %v", action, err)), nil
	}

	toolResult := results.PressToolResult{
		Arguments: results.PressToolArgs{
			SessionID: sessionID,
			Action:    action,
			Payload:   payload,
		},
		Category:      results.NewActionCategory(action),
		DisplayResult: results.NewDisplayResult(snapshot),
	}
	if !calculator.ActionID(action).IsKnown() {
		toolResult.Message = fmt.Sprintf("Action %s is not implemented; the display is unchanged.", action)
	} else {
		toolResult.Message = fmt.Sprintf("Pressed %s.", action)
	}

	return newJSONResult(toolResult), nil
}
