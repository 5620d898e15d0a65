package sse

import (
	"sync"
)

// Event is one progress update for a payslip generation batch.
type Event struct {
	BatchID string
	Name    string
	Data    interface{}
}

// Hub fans batch progress events out to HTTP subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber for a batch and returns the event channel
// and a cleanup function.
func (h *Hub) Subscribe(batchID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16)

	if h.subscribers[batchID] == nil {
		h.subscribers[batchID] = make(map[chan Event]struct{})
	}
	h.subscribers[batchID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[batchID], ch)
		close(ch)
		if len(h.subscribers[batchID]) == 0 {
			delete(h.subscribers, batchID)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a batch.
func (h *Hub) Publish(batchID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[batchID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}
