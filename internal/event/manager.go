// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/rematch/internal/logger"
)

// Handler defines the function signature for event subscribers.
// Returning true consumes the event; later handlers are skipped.
type Handler func(e Event) bool

// SubscriptionID identifies a handler for Unsubscribe.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	nextID   SubscriptionID
	handlers map[Type][]subscription
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]subscription),
	}
}

// Subscribe adds a handler for eventType. Handlers run in subscription order.
func (m *Manager) Subscribe(eventType Type, handler Handler) SubscriptionID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.handlers[eventType] = append(m.handlers[eventType], subscription{id: m.nextID, handler: handler})
	logger.DebugTagf("event", "Event Manager: Handler %d subscribed to %v", m.nextID, eventType)
	return m.nextID
}

// Unsubscribe removes a handler. Unknown IDs are ignored.
func (m *Manager) Unsubscribe(id SubscriptionID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for eventType, subs := range m.handlers {
		for i, sub := range subs {
			if sub.id != id {
				continue
			}
			kept := make([]subscription, 0, len(subs)-1)
			kept = append(kept, subs[:i]...)
			m.handlers[eventType] = append(kept, subs[i+1:]...)
			return
		}
	}
}

// Dispatch sends an event to the handlers for its type, synchronously.
// It reports whether a handler consumed the event.
func (m *Manager) Dispatch(eventType Type, data interface{}) bool {
	event := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock()
	subs := m.handlers[eventType]
	m.mu.RUnlock()

	if len(subs) == 0 {
		logger.DebugTagf("event", "Event Manager: No handlers for %v", eventType)
		return false
	}

	logger.DebugTagf("event", "Event Manager: Dispatching %v to %d handler(s)", eventType, len(subs))

	// subs is never mutated in place, so handlers may (un)subscribe while it is walked.
	for _, sub := range subs {
		if sub.handler(event) {
			return true
		}
	}
	return false
}
