package results

import "github.com/averycrespi/calc-mcp/pkg/types"

// DisplayResult represents the observable calculator state returned to clients
type DisplayResult struct {
	SessionID   string `json:"session_id"`
	Display     string `json:"display"`
	Expression  string `json:"expression"`
	Mode        string `json:"mode"`
	Memory      string `json:"memory"`
	Parentheses int    `json:"parentheses"`
}

// NewDisplayResult converts a session snapshot into a DisplayResult
func NewDisplayResult(snapshot types.Snapshot) DisplayResult {
	return DisplayResult{
		SessionID:   snapshot.SessionID,
		Display:     snapshot.Display,
		Expression:  snapshot.Expression,
		Mode:        snapshot.Mode,
		Memory:      snapshot.Memory,
		Parentheses: snapshot.Parentheses,
	}
}
