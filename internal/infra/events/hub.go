// Package events implements the EventPublisher domain service.
package events

import (
	"context"
	"log/slog"
	"sync"

	"tienda/internal/domain/service"
)

const defaultBufferSize = 16

// Hub is an in-process fan-out publisher. Each subscriber owns a buffered
// channel; emission never blocks, so a slow subscriber silently misses
// events. There is no delivery guarantee.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[int64]chan service.Event
	nextID      int64
	bufferSize  int
	closed      bool
	logger      *slog.Logger
}

// NewHub creates an in-process event hub.
func NewHub(bufferSize int, logger *slog.Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	return &Hub{
		subscribers: make(map[int64]chan service.Event),
		bufferSize:  bufferSize,
		logger:      logger,
	}
}

// Subscribe registers a new subscriber and returns its ID and channel.
// The caller must Unsubscribe when done to release the channel.
func (h *Hub) Subscribe() (int64, <-chan service.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan service.Event, h.bufferSize)
	if h.closed {
		close(ch)

		return id, ch
	}
	h.subscribers[id] = ch

	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

// Emit fans the event out to every subscriber without blocking. Events
// are dropped for subscribers whose buffer is full.
func (h *Hub) Emit(ctx context.Context, event service.Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	for id, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			h.logger.Warn("[Hub] Subscriber buffer full, event dropped",
				slog.Int64("subscriber_id", id),
				slog.String("event", event.Name),
			)
		}
	}

	return nil
}

// Close closes every subscriber channel and rejects further emissions.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}

	return nil
}
