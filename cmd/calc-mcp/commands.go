package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/web"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// options holds the command line flags shared by every subcommand
type options struct {
	configPath  string
	logLevel    string
	listenAddr  string
	maxSessions int
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           project.Name,
		Short:         "Pocket calculator served over MCP and WebSocket",
		Version:       project.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&opts.maxSessions, "max-sessions", 0, "Maximum number of concurrent calculator sessions")

	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve calculator tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), server.NewCalculatorServer(cfg, session.NewManager(cfg.MaxSessions)))
		},
	}

	webCmd := &cobra.Command{
		Use:   "web",
		Short: "Serve the calculator to browsers over WebSocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), web.NewServer(cfg, session.NewManager(cfg.MaxSessions)))
		},
	}
	webCmd.Flags().StringVar(&opts.listenAddr, "listen", "", "Address to listen on, e.g. 127.0.0.1:8080")

	rootCmd.AddCommand(mcpCmd, webCmd)
	return rootCmd
}

// loadConfig layers defaults, the config file and explicitly set flags, then installs the logger
func loadConfig(cmd *cobra.Command, opts *options) (*types.Config, error) {
	cfg, err := config.Load(afero.NewOsFs(), opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("max-sessions") {
		cfg.MaxSessions = opts.maxSessions
	}
	if flags.Changed("listen") {
		cfg.ListenAddr = opts.listenAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := config.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	slog.Debug("Configuration loaded", "config", fmt.Sprintf("%+v", *cfg))
	return cfg, nil
}

// run serves until the server stops or the process is interrupted
func run(ctx context.Context, srv types.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}
