package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/gorilla/websocket"
)

const sendBufferSize = 16

// Handler upgrades HTTP requests to WebSocket connections, each bound to its own calculator session
type Handler struct {
	calc     types.Calculator
	config   *types.Config
	upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket handler
func NewHandler(config *types.Config, calc types.Calculator) *Handler {
	return &Handler{
		calc:   calc,
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// client is one browser connection
type client struct {
	handler   *Handler
	conn      *websocket.Conn
	sessionID string
	send      chan []byte
}

// ServeHTTP handles the WebSocket upgrade and serves the connection until it closes
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.calc.NewSession()
	if err != nil {
		slog.Warn("Rejecting WebSocket connection", "remote", r.RemoteAddr, "error", err)
		http.Error(w, "calculator unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		_ = h.calc.CloseSession(sessionID)
		return
	}

	slog.Info("WebSocket client connected", "remote", conn.RemoteAddr(), "session", sessionID)

	c := &client{
		handler:   h,
		conn:      conn,
		sessionID: sessionID,
		send:      make(chan []byte, sendBufferSize),
	}

	go c.writePump()
	c.enqueue(h.process(sessionID, []byte(`{"type":"snapshot"}`)))
	c.readPump()
}

// process applies one inbound frame to the session and returns the encoded reply
func (h *Handler) process(sessionID string, message []byte) []byte {
	var request Request
	if err := json.Unmarshal(message, &request); err != nil {
		return encodeResponse(errorResponse(fmt.Sprintf("invalid message: %v", err)))
	}

	var (
		snapshot types.Snapshot
		err      error
	)
	switch request.Type {
	case RequestTypeAction:
		snapshot, err = h.calc.Dispatch(sessionID, request.Action, request.Payload)
	case RequestTypeKey:
		snapshot, err = h.calc.PressKeys(sessionID, []string{request.Key})
	case RequestTypeSnapshot:
		snapshot, err = h.calc.Snapshot(sessionID)
	default:
		return encodeResponse(errorResponse(fmt.Sprintf("unknown message type: %q", request.Type)))
	}
	if err != nil {
		return encodeResponse(errorResponse(err.Error()))
	}

	state := results.NewDisplayResult(snapshot)
	return encodeResponse(Response{Type: ResponseTypeDisplay, State: &state})
}

// enqueue queues a frame for the write pump. When the browser falls behind
// the frame is dropped; the next display frame replaces it.
func (c *client) enqueue(frame []byte) {
	select {
	case c.send <- frame:
	default:
		slog.Warn("Dropping frame for slow client", "session", c.sessionID)
	}
}

// readPump reads frames until the connection fails, then releases the session
func (c *client) readPump() {
	defer func() {
		if err := c.handler.calc.CloseSession(c.sessionID); err != nil {
			slog.Warn("Failed to close session", "session", c.sessionID, "error", err)
		}
		close(c.send)
		slog.Info("WebSocket client disconnected", "session", c.sessionID)
	}()

	pongWait := c.handler.config.PongWait
	c.conn.SetReadLimit(c.handler.config.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				slog.Warn("Unexpected WebSocket close", "session", c.sessionID, "error", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			c.enqueue(encodeResponse(errorResponse("only text frames are supported")))
			continue
		}

		slog.Debug("WebSocket frame received", "session", c.sessionID, "length", len(message))
		c.enqueue(c.handler.process(c.sessionID, message))
	}
}

// writePump writes queued frames and keeps the connection alive with pings
func (c *client) writePump() {
	ticker := time.NewTicker(c.handler.config.PingPeriod())
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	writeWait := c.handler.config.WriteWait
	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				slog.Warn("Failed to write frame", "session", c.sessionID, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				slog.Debug("Failed to send ping", "session", c.sessionID, "error", err)
				return
			}
		}
	}
}

func errorResponse(message string) Response {
	return Response{Type: ResponseTypeError, Error: message}
}

func encodeResponse(response Response) []byte {
	data, err := json.Marshal(response)
	if err != nil {
		// Response holds only strings and ints
		panic(fmt.Sprintf("failed to encode response: %v", err))
	}
	return data
}
