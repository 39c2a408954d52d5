// Package web broadcasts the frames of a running emulator to websocket
// clients. Frames are brotli compressed, identical frames are skipped
// and recently sent frames are referenced by their cache index.
package web

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Hub maintains the set of connected clients and broadcasts messages
// to them.
type Hub struct {
	Log log.Logger

	clients map[*Client]bool
	nextID  uint8

	broadcast            chan []byte
	register, unregister chan *Client
	done                 chan struct{}

	encoder *encoder

	mu sync.Mutex
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewHub returns a Hub compressing frames at the given brotli quality
// (0-11).
func NewHub(quality int, l log.Logger) *Hub {
	return &Hub{
		Log:        l,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		encoder:    newEncoder(quality),
	}
}

// ServeHTTP upgrades the connection to a websocket connection and
// registers a new client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Errorf("web: upgrading %s: %v", r.RemoteAddr, err)
		return
	}

	c := h.newClient(conn, r)
	c.send <- []byte{ClientInfo, c.ID}

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	// spawn read/write pumps
	go c.readPump()
	go c.writePump()
}

// Run handles registration and broadcasting until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			h.Log.Infof("web: client %d connected from %s", c.ID, c.RemoteAddr)
		case c := <-h.unregister:
			h.remove(c)
		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// too slow, drop the client
					delete(h.clients, c)
					close(c.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Consume encodes and broadcasts every frame received until frames is
// closed or the hub stops running.
func (h *Hub) Consume(frames <-chan ppu.Frame) {
	for f := range frames {
		messages, err := h.encoder.encode(f)
		if err != nil {
			h.Log.Errorf("web: encoding frame %d: %v", f.Number, err)
		}
		for _, msg := range messages {
			select {
			case h.broadcast <- msg:
			case <-h.done:
				return
			}
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client, returning the errors of closing
// their connections.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var result *multierror.Error
	for c := range h.clients {
		delete(h.clients, c)
		if err := c.conn.Close(); err != nil {
			result = multierror.Append(result, err)
		}
		close(c.send)
	}
	return result.ErrorOrNil()
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		h.Log.Infof("web: client %d disconnected", c.ID)
	}
}

// newClient creates a new client for the connection.
func (h *Hub) newClient(conn *websocket.Conn, r *http.Request) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	return &Client{
		ID:         h.nextID,
		RemoteAddr: r.RemoteAddr,
		hub:        h,
		conn:       conn,
		send:       make(chan []byte, 256),
	}
}
