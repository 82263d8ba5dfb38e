package web

import "github.com/averycrespi/calc-mcp/internal/results"

// Inbound message types
const (
	RequestTypeAction   = "action"
	RequestTypeKey      = "key"
	RequestTypeSnapshot = "snapshot"
)

// Outbound message types
const (
	ResponseTypeDisplay = "display"
	ResponseTypeError   = "error"
)

// Request is a frame sent by the browser
type Request struct {
	Type    string `json:"type"`
	Action  string `json:"action,omitempty"`
	Payload string `json:"payload,omitempty"`
	Key     string `json:"key,omitempty"`
}

// Response is a frame sent to the browser. Display frames always carry the
// full state, so a newer frame supersedes every older one.
type Response struct {
	Type  string                 `json:"type"`
	State *results.DisplayResult `json:"state,omitempty"`
	Error string                 `json:"error,omitempty"`
}
