package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReadDisplayTool handles display read requests
type ReadDisplayTool struct {
	calc types.Calculator
}

// NewReadDisplayTool creates a new read display tool
func NewReadDisplayTool(calc types.Calculator) *ReadDisplayTool {
	return &ReadDisplayTool{calc: calc}
}

// GetTool returns the MCP tool definition
func (t *ReadDisplayTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolReadDisplay,
		mcp.WithDescription("Read the calculator display without pressing anything"),
		mcp.WithString("session_id", mcp.Description(sessionIDDescription)),
	)
}

// Handle processes the tool request
func (t *ReadDisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snapshot, err := t.calc.Snapshot(getSessionID(req))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read display: %v", err)), nil
	}

	toolResult := results.ReadDisplayToolResult{
		Message:       fmt.Sprintf("Display shows %s.", snapshot.Display),
		DisplayResult: results.NewDisplayResult(snapshot),
	}

	return newJSONResult(toolResult), nil
}
