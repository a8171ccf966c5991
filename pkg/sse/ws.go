package sse

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Conn sends Datastar events over a WebSocket connection using the same
// wire encoding as the SSE transport. The client side decodes each text
// message as one SSE-formatted event.
//
// Conn serializes writes; gorilla/websocket allows at most one concurrent
// writer per connection.
type Conn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// NewConn wraps an upgraded WebSocket connection.
func NewConn(conn *websocket.Conn) *Conn {
	return &Conn{conn: conn}
}

// Send writes a single event as a text message.
func (c *Conn) Send(e *Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, []byte(e.String()))
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}
