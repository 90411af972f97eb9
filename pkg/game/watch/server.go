// Package watch streams frame snapshots to read-only websocket
// spectators. Spectators observe; they cannot act.
package watch

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"gridbot/pkg/game/renderer"
)

// snapshot is the wire form of a frame.
type snapshot struct {
	Width   int                     `json:"width"`
	Height  int                     `json:"height"`
	Rows    []string                `json:"rows"`
	Energy  int                     `json:"energy"`
	Keys    int                     `json:"keys"`
	Modules []renderer.ModuleStatus `json:"modules"`
	Status  string                  `json:"status"`
}

var upgrader = websocket.Upgrader{
	// Spectators are read-only; any origin may watch.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Hub fans frames out to connected spectators. Clients that fall
// behind are dropped so Publish never blocks the turn loop.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

// client is one spectator connection with a buffered outgoing queue.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates an empty spectator hub
func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// Handler returns the HTTP routes for the spectator endpoint.
func (h *Hub) Handler() http.Handler {
	router := way.NewRouter()
	router.HandleFunc("GET", "/watch", h.handleWatch)
	return router
}

// Serve starts the spectator endpoint on addr in the background.
func (h *Hub) Serve(addr string) {
	go func() {
		log.WithField("addr", addr).Info("watch server listening")
		if err := http.ListenAndServe(addr, h.Handler()); err != nil {
			log.WithError(err).Error("watch server stopped")
		}
	}()
}

// handleWatch upgrades the connection and registers the spectator.
func (h *Hub) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 16)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go c.writePump()
	go c.readPump(h)
}

// ClientCount returns the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish sends the frame to every spectator. A full send buffer
// means the client is too slow; it gets dropped instead of stalling
// the game.
func (h *Hub) Publish(f *renderer.Frame) {
	snap := snapshot{
		Width:   f.Width,
		Height:  f.Height,
		Rows:    f.RowStrings(),
		Energy:  f.Energy,
		Keys:    f.Keys,
		Modules: f.Modules,
		Status:  f.Status.String(),
	}
	msg, err := json.Marshal(snap)
	if err != nil {
		log.WithError(err).Error("marshaling frame")
		return
	}

	h.mu.Lock()
	var slow []*client
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.Unlock()

	for _, c := range slow {
		h.drop(c)
	}
}

// drop removes a client and closes its queue and socket exactly once.
// Closing the socket unblocks a writer stalled mid-WriteMessage and
// the parked reader, so a dropped client leaks nothing.
func (h *Hub) drop(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		c.conn.Close()
	}
	h.mu.Unlock()
}

// readPump drains client messages until the connection dies.
// Spectators have nothing to say, but the read detects the close.
func (c *client) readPump(h *Hub) {
	defer h.drop(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump forwards queued frames to the connection.
func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
