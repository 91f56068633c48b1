package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Barento999/ecommerce-spa-sub001/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler { return &WSHandler{hub: hub} }

// SeedSocket upgrades to WS and streams seeding progress until the client disconnects.
func (h *WSHandler) SeedSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		id := h.hub.Register(conn)
		// No inbound events are expected; keep reading until the connection closes.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unregister(id)
				break
			}
		}
	}
}
