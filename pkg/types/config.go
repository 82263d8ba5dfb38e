package types

import (
	"fmt"
	"time"
)

// Config represents the configuration for the calc-mcp server
type Config struct {
	LogLevel       string        `json:"log_level,omitempty" yaml:"log_level"`
	ListenAddr     string        `json:"listen_addr,omitempty" yaml:"listen_addr"`
	MaxSessions    int           `json:"max_sessions,omitempty" yaml:"max_sessions"`
	WriteWait      time.Duration `json:"write_wait,omitempty" yaml:"write_wait"`
	PongWait       time.Duration `json:"pong_wait,omitempty" yaml:"pong_wait"`
	MaxMessageSize int64         `json:"max_message_size,omitempty" yaml:"max_message_size"`
}

// DefaultConfig returns the configuration used when no file or flag overrides it
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		ListenAddr:     "127.0.0.1:8080",
		MaxSessions:    100,
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		MaxMessageSize: 4096,
	}
}

// PingPeriod returns how often the web transport pings a browser; it must be below PongWait
func (c *Config) PingPeriod() time.Duration {
	return (c.PongWait * 9) / 10
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}

	if c.ListenAddr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.MaxSessions <= 0 {
		return fmt.Errorf("max sessions must be positive, got %d", c.MaxSessions)
	}
	if c.WriteWait <= 0 || c.PongWait <= 0 {
		return fmt.Errorf("write wait and pong wait must be positive")
	}
	if c.MaxMessageSize <= 0 {
		return fmt.Errorf("max message size must be positive, got %d", c.MaxMessageSize)
	}

	return nil
}
