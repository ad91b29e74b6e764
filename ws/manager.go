// Package ws pushes server events to connected clients: AI drafts
// becoming ready, transcriptions finishing or failing.
package ws

import (
	"sync"

	"dentalai_backend/internal/logger"
)

// Event is the envelope sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type Manager struct {
	// A user may hold several connections (tablet plus operatory
	// workstation), so clients are keyed by user and connection.
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes connect and disconnect events. Call it once from a
// goroutine at startup.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if m.clients[client.UserID] == nil {
				m.clients[client.UserID] = make(map[*Client]bool)
			}
			m.clients[client.UserID][client] = true
			m.mu.Unlock()
			logger.Debug("ws client connected", "user_id", client.UserID)

		case client := <-m.unregister:
			m.mu.Lock()
			if conns, ok := m.clients[client.UserID]; ok {
				if conns[client] {
					delete(conns, client)
					close(client.Send)
				}
				if len(conns) == 0 {
					delete(m.clients, client.UserID)
				}
			}
			m.mu.Unlock()
			logger.Debug("ws client disconnected", "user_id", client.UserID)
		}
	}
}

// NotifyUser sends an event to every connection of one user. It is a
// no-op when the user is offline. Implements services.Notifier.
func (m *Manager) NotifyUser(userID string, event string, payload interface{}) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for client := range m.clients[userID] {
		select {
		case client.Send <- Event{Type: event, Payload: payload}:
		default:
			// Slow consumer; drop the event rather than block.
			logger.Warn("ws send buffer full, dropping event", "user_id", userID, "event", event)
		}
	}
}

// ConnectedUsers reports how many distinct users are online.
func (m *Manager) ConnectedUsers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
