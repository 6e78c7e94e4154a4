// Copyright (c) 2025 Neomantra Corp

package broadcast

import (
	"time"

	"github.com/gorilla/websocket"
)

// Client is one connected subscriber. It owns a drop-oldest ring buffer
// so a slow reader falls behind on history, never on freshness.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	buf  *ring
	wake chan struct{}
}

// enqueue appends data to the client's ring buffer and wakes its write
// pump if it's idle. Never blocks: a full buffer drops its oldest entry.
func (c *Client) enqueue(data []byte) {
	c.buf.push(data)
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// DroppedCount returns how many frames this subscriber has missed due to
// a full buffer.
func (c *Client) DroppedCount() uint64 {
	return c.buf.droppedCount()
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		c.hub.unregister(c)
	}()

	for {
		select {
		case <-c.wake:
			for _, frame := range c.buf.drain() {
				c.conn.SetWriteDeadline(time.Now().Add(c.hub.sendDeadline))
				if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
					return
				}
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.hub.sendDeadline))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains (and discards) client traffic; this feed is read-only,
// there is no subscription protocol per §6.
func (c *Client) readPump() {
	defer func() {
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
