package sse

import (
	"sync"
	"time"
)

// Event is a change notification pushed to connected clients. Topic names
// the table that changed (employees, attendance, leave_requests,
// payslips); clients reload the affected view wholesale.
type Event struct {
	Topic string      `json:"topic"`
	Data  interface{} `json:"data,omitempty"`
	At    time.Time   `json:"at"`
}

// Hub fans change events out to SSE subscribers. Delivery is
// fire-and-forget: a slow subscriber's events are dropped, never block
// the publisher.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber and returns its event channel and a
// cleanup function.
func (h *Hub) Subscribe() (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16)
	h.subscribers[ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
	}

	return ch, cleanup
}

// Publish broadcasts a change on a topic to every subscriber.
func (h *Hub) Publish(topic string, data interface{}) {
	event := Event{Topic: topic, Data: data, At: time.Now()}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// SubscriberCount returns the number of connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
