package server

import (
	"encoding/json"
	"sync"

	"github.com/playperu/geohunt/internal/progress"
)

// Broker is an in-process pub/sub for SSE events, keyed by hunt ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the given hunt.
func (b *Broker) Subscribe(huntID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[huntID] == nil {
		b.subs[huntID] = make(map[chan []byte]struct{})
	}
	b.subs[huntID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the hunt's subscribers.
func (b *Broker) Unsubscribe(huntID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[huntID], ch)
	if len(b.subs[huntID]) == 0 {
		delete(b.subs, huntID)
	}
	b.mu.Unlock()
}

// Notify implements progress.Notifier by publishing to the event's hunt.
func (b *Broker) Notify(e progress.Event) {
	b.Publish(e.HuntID, e)
}

// Publish sends an event to all subscribers of the given hunt.
func (b *Broker) Publish(huntID string, event progress.Event) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[huntID] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
