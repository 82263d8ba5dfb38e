package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool name prefix for all MCP tools
const ToolPrefix = "calculator."

// Tool names
const (
	ToolPress        = ToolPrefix + "press"
	ToolPressKeys    = ToolPrefix + "press_keys"
	ToolReadDisplay  = ToolPrefix + "read_display"
	ToolNewSession   = ToolPrefix + "new_session"
	ToolCloseSession = ToolPrefix + "close_session"
)

const sessionIDDescription = "Calculator session id; omit to use the shared default session"

// getSessionID extracts the optional session id from an MCP request
func getSessionID(req mcp.CallToolRequest) string {
	return strings.TrimSpace(mcp.ParseString(req, "session_id", types.DefaultSessionID))
}

// splitKeys splits a whitespace separated key list such as "1 + 2 Enter"
func splitKeys(keys string) []string {
	return strings.Fields(keys)
}

// newJSONResult marshals a tool result into an indented JSON text result
func newJSONResult(toolResult any) *mcp.CallToolResult {
	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err))
	}
	return mcp.NewToolResultText(string(jsonBytes))
}
