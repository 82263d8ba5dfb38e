package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/google/uuid"
)

var _ types.Calculator = &Manager{}

var (
	// ErrSessionNotFound is returned for ids that were never created or already closed
	ErrSessionNotFound = errors.New("session not found")
	// ErrTooManySessions is returned when the session limit is reached
	ErrTooManySessions = errors.New("too many sessions")
)

// Session pairs a calculator engine with the lock that serializes its input events
type Session struct {
	ID string

	mu     sync.Mutex
	engine *calculator.Engine
}

// Manager manages calculator sessions keyed by id
type Manager struct {
	sessions    map[string]*Session
	maxSessions int
	mu          sync.RWMutex
}

// NewManager creates a new session manager
func NewManager(maxSessions int) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
	}
}

// NewSession creates a session with a fresh engine and returns its id
func (m *Manager) NewSession() (string, error) {
	id := uuid.New().String()
	if _, err := m.add(id); err != nil {
		return "", err
	}
	return id, nil
}

// CloseSession discards a session and its engine
func (m *Manager) CloseSession(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[sessionID]; !exists {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	delete(m.sessions, sessionID)
	slog.Debug("Session closed", "session", sessionID, "remaining", len(m.sessions))
	return nil
}

// Dispatch applies one action to a session's engine
func (m *Manager) Dispatch(sessionID string, action string, payload string) (types.Snapshot, error) {
	s, err := m.resolve(sessionID)
	if err != nil {
		return types.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Dispatch(calculator.ActionID(action), payload)
	return s.snapshot(), nil
}

// PressKeys feeds keyboard keys to a session's engine in order; unbound keys are skipped
func (m *Manager) PressKeys(sessionID string, keys []string) (types.Snapshot, error) {
	s, err := m.resolve(sessionID)
	if err != nil {
		return types.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		if _, ok := s.engine.PressKey(key); !ok {
			slog.Debug("Skipping unbound key", "session", s.ID, "key", key)
		}
	}
	return s.snapshot(), nil
}

// Snapshot returns the current state of a session
func (m *Manager) Snapshot(sessionID string) (types.Snapshot, error) {
	s, err := m.resolve(sessionID)
	if err != nil {
		return types.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(), nil
}

// Count returns the number of open sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// resolve finds a session. The empty id means the default session, which
// is created on first use; any other id must already exist.
func (m *Manager) resolve(sessionID string) (*Session, error) {
	if sessionID == "" {
		sessionID = types.DefaultSessionID
	}

	m.mu.RLock()
	s, exists := m.sessions[sessionID]
	m.mu.RUnlock()
	if exists {
		return s, nil
	}

	if sessionID != types.DefaultSessionID {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return m.add(sessionID)
}

func (m *Manager) add(sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, exists := m.sessions[sessionID]; exists {
		return s, nil
	}
	if len(m.sessions) >= m.maxSessions {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManySessions, m.maxSessions)
	}

	s := &Session{
		ID:     sessionID,
		engine: calculator.NewEngine(),
	}
	m.sessions[sessionID] = s
	slog.Debug("Session created", "session", sessionID, "total", len(m.sessions))
	return s, nil
}

// snapshot must be called with s.mu held
func (s *Session) snapshot() types.Snapshot {
	state := s.engine.State()
	return types.Snapshot{
		SessionID:   s.ID,
		Display:     state.Display,
		Expression:  state.Expression,
		Mode:        string(state.Mode()),
		Memory:      calculator.NumberString(state.Memory),
		Parentheses: state.Parentheses,
	}
}
