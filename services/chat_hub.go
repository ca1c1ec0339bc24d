package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type ChatClient struct {
	Conn *websocket.Conn
}

// ChatHub tracks the open chat sockets for the local profile so the server
// can push alerts (e.g. warnings when a meal is saved).
type ChatHub struct {
	mu      sync.RWMutex
	clients map[*ChatClient]struct{}
}

func NewChatHub() *ChatHub {
	return &ChatHub{clients: make(map[*ChatClient]struct{})}
}

func (h *ChatHub) Register(c *ChatClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *ChatHub) Unregister(c *ChatClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *ChatHub) Broadcast(payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
