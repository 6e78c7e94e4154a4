// Copyright (c) 2025 Neomantra Corp

package broadcast

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Server listens on a TCP port and upgrades every incoming connection to a
// Hub subscriber. There is no subscription protocol: every client receives
// every snapshot emitted after it connects, per §6.
type Server struct {
	hub      *Hub
	server   *http.Server
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewServer returns a Server that will listen on port and fan snapshots
// accepted by hub out to every connection upgraded at path "/".
func NewServer(hub *Hub, port int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	s := &Server{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// A capture replay tool has no browser origin to police;
			// any client that can reach the port may subscribe.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger.With("component", "broadcast-server"),
	}
	mux.HandleFunc("/", s.handleWebSocket)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	s.hub.Register(conn)
}

// ListenAndServe blocks until the server is shut down or fails to bind.
func (s *Server) ListenAndServe() error {
	s.logger.Info("broadcast server starting", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("broadcast server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting new connections and waits up to 10s for
// in-flight writes to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
