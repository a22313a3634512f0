package notify

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler upgrades board viewers to a WebSocket connection.
type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) Connect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
		return
	}
	h.hub.ServeWS(conn)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/ws", h.Connect)
}
