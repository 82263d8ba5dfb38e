package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/averycrespi/calc-mcp/pkg/types"
)

var _ types.Server = &Server{}

const shutdownTimeout = 5 * time.Second

// Server serves the calculator to browsers over HTTP and WebSocket
type Server struct {
	config     *types.Config
	httpServer *http.Server
}

// NewServer creates a new web server
func NewServer(config *types.Config, calc types.Calculator) *Server {
	mux := http.NewServeMux()
	mux.Handle("/ws", NewHandler(config, calc))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &Server{
		config: config,
		httpServer: &http.Server{
			Addr:              config.ListenAddr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Serve listens on the configured address until ctx is done
func (s *Server) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.ListenAddr, err)
	}
	return s.ServeListener(ctx, listener)
}

// ServeListener serves on an existing listener until ctx is done
func (s *Server) ServeListener(ctx context.Context, listener net.Listener) error {
	slog.Info("Starting calculator web server", "addr", listener.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}
	slog.Info("Calculator web server stopped")
	return nil
}
