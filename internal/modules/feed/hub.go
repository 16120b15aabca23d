package feed

import (
	"context"
	"sync"

	"github.com/Userdead-19/labs-cse/internal/domain"

	"github.com/gorilla/websocket"
)

// Hub fans booking lifecycle events out to every connected calendar client.
// One connection per user; a reconnect replaces the old socket.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

func (h *Hub) ConnectedCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) broadcast(message interface{}) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		conns[id] = conn
	}
	h.mutex.RUnlock()

	for userID, conn := range conns {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(userID)
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}

type event struct {
	Type    string          `json:"type"`
	Booking *domain.Booking `json:"booking,omitempty"`
	ID      int64           `json:"id,omitempty"`
}

// The following methods satisfy the booking module's EventPublisher.

func (h *Hub) BookingCreated(_ context.Context, b *domain.Booking) {
	h.broadcast(event{Type: "booking_created", Booking: b})
}

func (h *Hub) BookingStatusChanged(_ context.Context, b *domain.Booking) {
	h.broadcast(event{Type: "booking_updated", Booking: b})
}

func (h *Hub) BookingDeleted(_ context.Context, bookingID int64) {
	h.broadcast(event{Type: "booking_deleted", ID: bookingID})
}
