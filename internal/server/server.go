package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalculatorServer{}

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer *server.MCPServer
	calc      types.Calculator
	config    *types.Config
}

// NewCalculatorServer creates a new calculator MCP server with its tools registered
func NewCalculatorServer(config *types.Config, calc types.Calculator) *CalculatorServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s := &CalculatorServer{
		mcpServer: mcpServer,
		calc:      calc,
		config:    config,
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server
func (s *CalculatorServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve serves MCP over stdio until the client disconnects or ctx is done
func (s *CalculatorServer) Serve(ctx context.Context) error {
	slog.Info("Starting calculator MCP server", "name", project.Name, "version", project.Version)

	stdio := server.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalculatorServer) registerTools() {
	pressTool := tools.NewPressTool(s.calc)
	s.mcpServer.AddTool(pressTool.GetTool(), pressTool.Handle)

	pressKeysTool := tools.NewPressKeysTool(s.calc)
	s.mcpServer.AddTool(pressKeysTool.GetTool(), pressKeysTool.Handle)

	readDisplayTool := tools.NewReadDisplayTool(s.calc)
	s.mcpServer.AddTool(readDisplayTool.GetTool(), readDisplayTool.Handle)

	newSessionTool := tools.NewNewSessionTool(s.calc)
	s.mcpServer.AddTool(newSessionTool.GetTool(), newSessionTool.Handle)

	closeSessionTool := tools.NewCloseSessionTool(s.calc)
	s.mcpServer.AddTool(closeSessionTool.GetTool(), closeSessionTool.Handle)
}
