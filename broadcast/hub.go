// Copyright (c) 2025 Neomantra Corp

// Package broadcast fans snapshot records out to any number of connected
// WebSocket subscribers. Each subscriber has its own bounded, drop-oldest
// buffer so one slow reader never stalls the others or the engine thread
// feeding the hub.
package broadcast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nimblemarkets-labs/itch-lob-go/book"
)

// DefaultBufferSize is the default per-subscriber ring buffer depth, §4.8.
const DefaultBufferSize = 1024

// DefaultSendDeadline is the default per-write socket deadline, §5.
const DefaultSendDeadline = 500 * time.Millisecond

const (
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Config configures a Hub.
type Config struct {
	Symbol string
	Depth  int

	// BufferSize is the per-subscriber ring depth. Zero means
	// DefaultBufferSize.
	BufferSize int
	// SendDeadline bounds each individual socket write. Zero means
	// DefaultSendDeadline.
	SendDeadline time.Duration

	Logger *slog.Logger
}

// Hub owns the set of connected subscribers and implements book.Sink so
// the replay path can feed it directly.
type Hub struct {
	symbol       string
	depth        int
	bufferSize   int
	sendDeadline time.Duration
	logger       *slog.Logger

	mu      sync.RWMutex
	clients map[*Client]struct{}

	// goneDropped accumulates DroppedCount from clients that have already
	// unregistered, so TotalDropped reflects the whole run rather than
	// only currently-connected subscribers.
	goneDropped uint64
}

// NewHub returns an empty Hub ready to accept subscribers and snapshots.
func NewHub(cfg Config) *Hub {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bufSize := cfg.BufferSize
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	deadline := cfg.SendDeadline
	if deadline <= 0 {
		deadline = DefaultSendDeadline
	}
	depth := cfg.Depth
	if depth <= 0 {
		depth = 10
	}
	return &Hub{
		symbol:       cfg.Symbol,
		depth:        depth,
		bufferSize:   bufSize,
		sendDeadline: deadline,
		logger:       logger.With("component", "broadcast"),
		clients:      make(map[*Client]struct{}),
	}
}

// Accept implements book.Sink. It builds the wire frame once and fans it
// out to every connected subscriber's ring buffer; subscribers joining
// mid-stream never see records emitted before they connected.
func (h *Hub) Accept(snap book.Snapshot) error {
	data, err := BuildFrame(snap, h.symbol, h.depth)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.enqueue(data)
	}
	return nil
}

// SubscriberCount returns the number of currently connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Register starts a Client for conn and adds it to the hub's subscriber
// set. The Client's pumps run in their own goroutines; Register returns
// immediately.
func (h *Hub) Register(conn *websocket.Conn) *Client {
	c := &Client{
		hub:  h,
		conn: conn,
		buf:  newRing(h.bufferSize),
		wake: make(chan struct{}, 1),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("subscriber connected", "count", count)

	go c.writePump()
	go c.readPump()
	return c
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	count := len(h.clients)
	if ok {
		h.goneDropped += c.buf.droppedCount()
	}
	h.mu.Unlock()
	if ok {
		h.logger.Info("subscriber disconnected", "count", count, "dropped", c.buf.droppedCount())
	}
}

// TotalDropped returns the number of frames dropped across every
// subscriber this hub has ever served, including ones that have since
// disconnected, for the end-of-run report's subscriber-drop counter.
func (h *Hub) TotalDropped() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	total := h.goneDropped
	for c := range h.clients {
		total += c.DroppedCount()
	}
	return total
}
