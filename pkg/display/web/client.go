package web

import (
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Client is a websocket connection registered with a Hub.
type Client struct {
	ID         uint8
	RemoteAddr string

	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// readPump discards incoming messages until the connection closes,
// and then unregisters the client.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return // connection closed
		}
	}
}

// writePump writes every queued message to the connection.
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			return
		}
	}

	// hub closed the channel
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
