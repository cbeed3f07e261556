package spectator

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

const (
	writeWait      = 10 * time.Second
	broadcastQueue = 256
)

// Message is the JSON envelope of everything sent to spectators
type Message struct {
	Type    string      `json:"type"` // "notification", "turn"
	Payload interface{} `json:"payload"`
}

// NotificationPayload mirrors world.Notification on the wire
type NotificationPayload struct {
	Turn    int    `json:"turn"`
	Ship    int    `json:"ship"`
	Message string `json:"message"`
	Sound   string `json:"sound,omitempty"`
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub broadcasts simulation notifications to connected websocket clients.
// It implements world.Notifier and http.Handler. Spectators are read-only:
// anything they send is discarded.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	done       chan struct{}
	count      atomic.Int64
	dropped    atomic.Int64
	bufferSize int
	logger     common.TurnLogger
	upgrader   websocket.Upgrader
}

// NewHub creates a hub. bufferSize bounds each client's outbound queue; a
// client that falls behind is disconnected.
func NewHub(bufferSize int, logger common.TurnLogger) *Hub {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	if logger == nil {
		logger = common.LoggerFromContext(context.Background())
	}
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, broadcastQueue),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		bufferSize: bufferSize,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Run owns the client set until ctx is done, then disconnects everyone.
// A hub runs once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.count.Store(int64(len(h.clients)))
			h.logger.Log(common.LevelDebug, "spectator connected", map[string]interface{}{
				"remote":     c.conn.RemoteAddr().String(),
				"spectators": len(h.clients),
			})
		case c := <-h.unregister:
			if h.clients[c] {
				h.drop(c)
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.count.Store(int64(len(h.clients)))
}

// Clients is the number of connected spectators
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Dropped counts messages discarded because the broadcast queue was full
func (h *Hub) Dropped() int {
	return int(h.dropped.Load())
}

// Notify queues a notification for every spectator without blocking
func (h *Hub) Notify(n world.Notification) {
	h.Publish("notification", NotificationPayload{
		Turn:    n.Turn,
		Ship:    int(n.Ship),
		Message: n.Message,
		Sound:   string(n.Sound),
	})
}

// Publish queues an arbitrary message without blocking
func (h *Hub) Publish(kind string, payload interface{}) {
	data, err := json.Marshal(Message{Type: kind, Payload: payload})
	if err != nil {
		h.logger.Log(common.LevelWarn, "failed to encode spectator message", map[string]interface{}{
			"type":  kind,
			"error": err.Error(),
		})
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.dropped.Add(1)
	}
}

// ServeHTTP upgrades the request to a websocket and registers the client
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Log(common.LevelWarn, "websocket upgrade failed", map[string]interface{}{"error": err.Error()})
		return
	}
	c := &client{hub: h, conn: conn, send: make(chan []byte, h.bufferSize)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	case <-r.Context().Done():
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// readPump discards inbound frames and notices disconnects
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
