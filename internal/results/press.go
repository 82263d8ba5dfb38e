package results

// PressToolArgs represents the arguments of the press tool
type PressToolArgs struct {
	SessionID string `json:"session_id,omitempty"`
	Action    string `json:"action"`
	Payload   string `json:"payload,omitempty"`
}

// PressToolResult represents the result of the press tool
type PressToolResult struct {
	Arguments PressToolArgs  `json:"arguments"`
	Category  ActionCategory `json:"category"`
	Message   string         `json:"message"`
	DisplayResult
}

// PressKeysToolArgs represents the arguments of the press_keys tool
type PressKeysToolArgs struct {
	SessionID string   `json:"session_id,omitempty"`
	Keys      []string `json:"keys"`
}

// PressKeysToolResult represents the result of the press_keys tool
type PressKeysToolResult struct {
	Arguments PressKeysToolArgs `json:"arguments"`
	Message   string            `json:"message"`
	DisplayResult
}

// ReadDisplayToolResult represents the result of the read_display tool
type ReadDisplayToolResult struct {
	Message string `json:"message"`
	DisplayResult
}

// SessionToolResult represents the result of the session lifecycle tools
type SessionToolResult struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}
