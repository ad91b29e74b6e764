package ws

import (
	"net/http"

	"dentalai_backend/internal/auth"
	"dentalai_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The API is token-authenticated, not cookie-authenticated,
		// so cross-origin upgrades carry no CSRF risk.
		return true
	},
}

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// ServeWS upgrades the connection. Browsers cannot set an
// Authorization header on the upgrade request, so the access token
// arrives as a query parameter.
func (h *Handler) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing 'token' query parameter"})
		return
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithError(err).Warn("ws upgrade failed", "user_id", claims.UserID)
		return
	}

	client := &Client{
		UserID:  claims.UserID,
		Conn:    conn,
		Send:    make(chan Event, 256),
		Manager: h.manager,
	}

	h.manager.register <- client

	go client.readPump()
	go client.writePump()
}
