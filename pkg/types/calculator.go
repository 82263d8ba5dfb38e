package types

// DefaultSessionID names the session used when a caller does not supply one
const DefaultSessionID = "default"

// Calculator defines the session-aware calculator operations used by transports
type Calculator interface {
	NewSession() (string, error)
	CloseSession(sessionID string) error

	Dispatch(sessionID string, action string, payload string) (Snapshot, error)
	PressKeys(sessionID string, keys []string) (Snapshot, error)
	Snapshot(sessionID string) (Snapshot, error)
}

// Snapshot is the observable state of one calculator session
type Snapshot struct {
	SessionID   string `json:"session_id"`
	Display     string `json:"display"`
	Expression  string `json:"expression"`
	Mode        string `json:"mode"`
	Memory      string `json:"memory"`
	Parentheses int    `json:"parentheses"`
}
