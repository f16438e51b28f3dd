package handlers

import (
	"log"
	"net/http"

	"github.com/devpals/devpals-go/internal/api/middleware"
	"github.com/devpals/devpals-go/internal/chat"
	"github.com/devpals/devpals-go/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ChatHandler struct {
	hub *chat.Hub
}

func NewChatHandler(hub *chat.Hub) *ChatHandler {
	return &ChatHandler{hub: hub}
}

// Serve upgrades the request and pumps messages through the hub until the
// peer disconnects. Browsers cannot set headers on a websocket handshake,
// so the token also comes in via query parameter.
func (h *ChatHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = c.GetHeader("Sec-WebSocket-Protocol")
	}
	claims, err := middleware.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("chat: upgrade failed: %v", err)
		return
	}

	connID := uuid.NewString()
	h.hub.Add(connID, conn)
	log.Printf("chat: %s connected (%d online)", claims.Nickname, h.hub.Count())

	defer func() {
		h.hub.Remove(connID)
		conn.Close()
		log.Printf("chat: %s disconnected (%d online)", claims.Nickname, h.hub.Count())
	}()

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("chat: read error: %v", err)
			}
			return
		}
		h.hub.Broadcast(connID, messageType, payload)
	}
}
