package realtime

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Barento999/ecommerce-spa-sub001/seed"
)

// Hub tracks websocket watchers of seeding progress.
type Hub struct {
	mu       sync.RWMutex
	watchers map[string]*wsConn
	logger   *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{watchers: make(map[string]*wsConn), logger: logger}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Register adds conn and returns the id to unregister it with.
func (h *Hub) Register(conn *websocket.Conn) string {
	id := uuid.NewString()
	h.mu.Lock()
	h.watchers[id] = &wsConn{conn: conn}
	n := len(h.watchers)
	h.mu.Unlock()
	h.logger.WithFields(logrus.Fields{"watcher_id": id, "watchers": n}).Info("ws: watcher connected")
	return id
}

func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	c, ok := h.watchers[id]
	if ok {
		delete(h.watchers, id)
	}
	n := len(h.watchers)
	h.mu.Unlock()
	if ok {
		c.conn.Close()
		h.logger.WithFields(logrus.Fields{"watcher_id": id, "watchers": n}).Info("ws: watcher disconnected")
	}
}

// Count returns the number of connected watchers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers)
}

// Broadcast sends a typed event payload to every watcher. Watchers whose
// write fails are dropped.
func (h *Hub) Broadcast(event string, payload any) {
	h.mu.RLock()
	targets := make(map[string]*wsConn, len(h.watchers))
	for id, wc := range h.watchers {
		targets[id] = wc
	}
	h.mu.RUnlock()

	msg := map[string]any{"event": event, "data": payload}
	for id, wc := range targets {
		wc.mu.Lock()
		err := wc.conn.WriteJSON(msg)
		wc.mu.Unlock()
		if err != nil {
			h.logger.WithError(err).WithFields(logrus.Fields{"watcher_id": id, "event": event}).Warn("ws: write failed")
			h.Unregister(id)
		}
	}
}

// SeedReporter forwards seeding progress events to all watchers.
func (h *Hub) SeedReporter() seed.Reporter {
	return seed.ReporterFunc(func(e seed.Event) {
		h.Broadcast(string(e.Type), e)
	})
}
