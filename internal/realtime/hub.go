package realtime

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/limbo/fittrack/pkg/entity"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	sendBuffer = 16
)

type client struct {
	phone string
	conn  *websocket.Conn
	send  chan []byte
}

// Hub keeps websocket subscribers per phone number and fans record events out to them.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]map[*client]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Publish never blocks: a subscriber with a full buffer is dropped.
func (h *Hub) Publish(phone string, event entity.RecordEvent) {
	msg, err := sonic.Marshal(event)
	if err != nil {
		slog.Error("marshalling realtime event error", slog.String("error", err.Error()))
		return
	}
	h.mu.RLock()
	var slow []*client
	for c := range h.clients[phone] {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()
	for _, c := range slow {
		h.unregister(c)
	}
}

// Subscribers returns number of live connections for phone.
func (h *Hub) Subscribers(phone string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[phone])
}

// Serve upgrades the request and streams phone's events until the peer goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, phone string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	c := &client{
		phone: phone,
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
	}
	h.register(c)
	go h.writePump(c)
	h.readPump(c)
	return nil
}

// CloseAll disconnects every subscriber. Used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	var all []*client
	for _, set := range h.clients {
		for c := range set {
			all = append(all, c)
		}
	}
	h.mu.Unlock()
	for _, c := range all {
		h.unregister(c)
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.phone] == nil {
		h.clients[c.phone] = make(map[*client]struct{})
	}
	h.clients[c.phone][c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	set := h.clients[c.phone]
	_, ok := set[c]
	if ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.phone)
		}
		close(c.send)
	}
	h.mu.Unlock()
	if ok {
		_ = c.conn.Close()
	}
}

// Incoming messages are ignored; reading only serves pongs and close frames.
func (h *Hub) readPump(c *client) {
	defer h.unregister(c)
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.unregister(c)
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
