package notify

import (
	"log"
	"sync"

	"feedcompose/internal/common"
)

// Observer receives every user-facing notification fanned out by the Hub.
type Observer interface {
	Update(severity common.Severity, message string) error
	Name() string
}

// Hub fans (severity, message) events out to subscribed observers. It is the
// concrete notification sink handed to the composition core.
type Hub struct {
	observers map[string]Observer
	mu        sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		observers: make(map[string]Observer),
	}
}

func (h *Hub) Subscribe(observer Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers[observer.Name()] = observer
	log.Printf("Observer %s subscribed", observer.Name())
}

func (h *Hub) Unsubscribe(observer Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.observers, observer.Name())
	log.Printf("Observer %s unsubscribed", observer.Name())
}

// Notify implements common.Notifier.
func (h *Hub) Notify(severity common.Severity, message string) {
	h.mu.RLock()
	observers := make([]Observer, 0, len(h.observers))
	for _, obs := range h.observers {
		observers = append(observers, obs)
	}
	h.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(severity, message); err != nil {
			log.Printf("Observer %s update failed: %v", observer.Name(), err)
		}
	}
}
