package session

import (
	"sync"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	manager := NewManager(10)
	require.NotNil(t, manager)
	assert.Equal(t, 0, manager.Count())
}

func TestManagerNewSession(t *testing.T) {
	manager := NewManager(10)

	id, err := manager.NewSession()
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err, "session id should be a uuid")
	assert.Equal(t, 1, manager.Count())

	snapshot, err := manager.Snapshot(id)
	require.NoError(t, err)
	assert.Equal(t, types.Snapshot{
		SessionID: id,
		Display:   "0",
		Mode:      "idle",
		Memory:    "0",
	}, snapshot)
}

func TestManagerSessionLimit(t *testing.T) {
	manager := NewManager(2)

	_, err := manager.NewSession()
	require.NoError(t, err)
	_, err = manager.NewSession()
	require.NoError(t, err)

	_, err = manager.NewSession()
	assert.ErrorIs(t, err, ErrTooManySessions)

	_, err = manager.Dispatch("", "digit", "1")
	assert.ErrorIs(t, err, ErrTooManySessions, "default session counts toward the limit")
}

func TestManagerDefaultSession(t *testing.T) {
	manager := NewManager(10)

	snapshot, err := manager.Dispatch("", "digit", "4")
	require.NoError(t, err)
	assert.Equal(t, types.DefaultSessionID, snapshot.SessionID)
	assert.Equal(t, "4", snapshot.Display)

	snapshot, err = manager.Dispatch(types.DefaultSessionID, "add", "")
	require.NoError(t, err)
	assert.Equal(t, "4 +", snapshot.Expression)
	assert.Equal(t, "awaiting_operand", snapshot.Mode)
	assert.Equal(t, 1, manager.Count())
}

func TestManagerUnknownSession(t *testing.T) {
	manager := NewManager(10)

	_, err := manager.Dispatch("missing", "digit", "1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = manager.Snapshot("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = manager.PressKeys("missing", []string{"1"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = manager.CloseSession("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerCloseSession(t *testing.T) {
	manager := NewManager(10)

	id, err := manager.NewSession()
	require.NoError(t, err)

	require.NoError(t, manager.CloseSession(id))
	assert.Equal(t, 0, manager.Count())

	_, err = manager.Snapshot(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerSessionsAreIndependent(t *testing.T) {
	manager := NewManager(10)

	first, err := manager.NewSession()
	require.NoError(t, err)
	second, err := manager.NewSession()
	require.NoError(t, err)

	_, err = manager.PressKeys(first, []string{"7", "*", "6", "Enter"})
	require.NoError(t, err)
	_, err = manager.Dispatch(second, "pi", "")
	require.NoError(t, err)

	snapshot, err := manager.Snapshot(first)
	require.NoError(t, err)
	assert.Equal(t, "42", snapshot.Display)
	assert.Equal(t, "7 × 6 =", snapshot.Expression)

	snapshot, err = manager.Snapshot(second)
	require.NoError(t, err)
	assert.Equal(t, "3.1415926536", snapshot.Display)
	assert.Equal(t, "π", snapshot.Expression)
}

func TestManagerPressKeysSkipsUnboundKeys(t *testing.T) {
	manager := NewManager(10)

	snapshot, err := manager.PressKeys("", []string{"9", "Shift", "/", "3", "x", "="})
	require.NoError(t, err)
	assert.Equal(t, "3", snapshot.Display)
	assert.Equal(t, "9 ÷ 3 =", snapshot.Expression)
}

func TestManagerMemoryInSnapshot(t *testing.T) {
	manager := NewManager(10)

	_, err := manager.PressKeys("", []string{"2", "."})
	require.NoError(t, err)
	snapshot, err := manager.Dispatch("", "digit", "5")
	require.NoError(t, err)
	assert.Equal(t, "2.5", snapshot.Display)

	snapshot, err = manager.Dispatch("", "memory-add", "")
	require.NoError(t, err)
	assert.Equal(t, "2.5", snapshot.Memory)

	_, err = manager.Dispatch("", "clear", "")
	require.NoError(t, err)
	snapshot, err = manager.Dispatch("", "memory-recall", "")
	require.NoError(t, err)
	assert.Equal(t, "2.5", snapshot.Display)
}

func TestManagerConcurrentDispatch(t *testing.T) {
	manager := NewManager(10)
	id, err := manager.NewSession()
	require.NoError(t, err)

	_, err = manager.Dispatch(id, string(calculator.ActionDigit), "1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := manager.Dispatch(id, string(calculator.ActionMemoryAdd), "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	snapshot, err := manager.Snapshot(id)
	require.NoError(t, err)
	assert.Equal(t, "50", snapshot.Memory)
}
