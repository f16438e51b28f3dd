package chat

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub is the per-process connection registry for the chat transport.
// Connections are keyed by connection id and owned by this hub alone:
// added on connect, removed on disconnect, never observed by other
// components.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Add(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[id] = conn
}

func (h *Hub) Remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, id)
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast writes a message to every connection except the sender.
// Write failures only evict the broken connection.
func (h *Hub) Broadcast(senderID string, messageType int, payload []byte) {
	h.mu.RLock()
	targets := make(map[string]*websocket.Conn, len(h.conns))
	for id, conn := range h.conns {
		if id != senderID {
			targets[id] = conn
		}
	}
	h.mu.RUnlock()

	for id, conn := range targets {
		if err := conn.WriteMessage(messageType, payload); err != nil {
			log.Printf("chat: write to %s failed, dropping connection: %v", id, err)
			conn.Close()
			h.Remove(id)
		}
	}
}
