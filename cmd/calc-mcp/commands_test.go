package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	cmd, _, err := root.Find([]string{name})
	require.NoError(t, err)
	require.Equal(t, name, cmd.Name())
	return cmd
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd(&options{})

	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "mcp")
	assert.Contains(t, names, "web")
}

func TestLoadConfigDefaults(t *testing.T) {
	opts := &options{}
	mcpCmd := findCommand(t, newRootCmd(opts), "mcp")
	require.NoError(t, mcpCmd.ParseFlags(nil))

	cfg, err := loadConfig(mcpCmd, opts)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100, cfg.MaxSessions)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	content := "log_level: warn\nlisten_addr: \"127.0.0.1:7000\"\nmax_sessions: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts := &options{}
	webCmd := findCommand(t, newRootCmd(opts), "web")
	require.NoError(t, webCmd.ParseFlags([]string{"--config", path, "--listen", "127.0.0.1:9999"}))

	cfg, err := loadConfig(webCmd, opts)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.ListenAddr, "flag wins over file")
	assert.Equal(t, "warn", cfg.LogLevel, "file wins over default")
	assert.Equal(t, 3, cfg.MaxSessions)
}

func TestLoadConfigRejectsInvalidFlags(t *testing.T) {
	opts := &options{}
	mcpCmd := findCommand(t, newRootCmd(opts), "mcp")
	require.NoError(t, mcpCmd.ParseFlags([]string{"--max-sessions", "-1"}))

	_, err := loadConfig(mcpCmd, opts)
	assert.ErrorContains(t, err, "invalid configuration")
}
