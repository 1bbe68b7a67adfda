package learning

import (
	"log/slog"
	"sync"
)

// Publisher fans engagement events out to a session's subscribers
type Publisher interface {
	Publish(event Event)
	Subscribe(sessionID string) (<-chan Event, func())
}

type subscription struct {
	ch   chan Event
	once sync.Once
}

func (s *subscription) close() {
	s.once.Do(func() { close(s.ch) })
}

// Hub is the in-process Publisher. Delivery is best effort: a subscriber
// whose buffer is full misses the event rather than stalling the publisher.
type Hub struct {
	buffer int
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[string]map[*subscription]struct{}
}

func NewHub(buffer int, logger *slog.Logger) *Hub {
	return &Hub{
		buffer:      buffer,
		logger:      logger,
		subscribers: make(map[string]map[*subscription]struct{}),
	}
}

func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[event.SessionID] {
		select {
		case sub.ch <- event:
		default:
			h.logger.Warn("dropped event for slow subscriber",
				"session_id", event.SessionID, "type", event.Type)
		}
	}
}

// Subscribe registers a listener for sessionID. The returned cancel func
// unregisters it and closes the channel; it is safe to call more than once
// and after CloseSession.
func (h *Hub) Subscribe(sessionID string) (<-chan Event, func()) {
	sub := &subscription{ch: make(chan Event, h.buffer)}

	h.mu.Lock()
	if h.subscribers[sessionID] == nil {
		h.subscribers[sessionID] = make(map[*subscription]struct{})
	}
	h.subscribers[sessionID][sub] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if subs, ok := h.subscribers[sessionID]; ok {
			delete(subs, sub)
			if len(subs) == 0 {
				delete(h.subscribers, sessionID)
			}
		}
		h.mu.Unlock()
		sub.close()
	}
	return sub.ch, cancel
}

// CloseSession closes every subscription of a session that has ended
func (h *Hub) CloseSession(sessionID string) {
	h.mu.Lock()
	subs := h.subscribers[sessionID]
	delete(h.subscribers, sessionID)
	h.mu.Unlock()

	for sub := range subs {
		sub.close()
	}
	if len(subs) > 0 {
		h.logger.Debug("closed event subscriptions", "session_id", sessionID, "count", len(subs))
	}
}
