package events

import (
	"log/slog"
	"sync"
)

// Kind names match the wire protocol the web client listens for.
type Kind string

const (
	PollCreated Kind = "newPoll"
	PollUpdated Kind = "pollUpdated"
	PollDeleted Kind = "pollDeleted"
)

// Event is one poll lifecycle notification. Payload is the affected
// poll snapshot, or a Deletion for removed polls.
type Event struct {
	Kind    Kind `json:"type"`
	Payload any  `json:"payload"`
}

// Deletion is the payload for PollDeleted events.
type Deletion struct {
	ID string `json:"id"`
}

// subscriberBuffer is how many events a subscriber may fall behind
// before events are dropped for it.
const subscriberBuffer = 16

// Subscriber receives events on C until Unsubscribe closes it.
type Subscriber struct {
	C chan Event
}

// Hub fans poll lifecycle events out to connected subscribers.
// Delivery is best-effort: no persistence, no replay, and a slow
// subscriber loses events rather than stalling the publisher.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

// Subscribe registers a new observer. The caller must Unsubscribe when
// done or the subscriber leaks.
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{C: make(chan Event, subscriberBuffer)}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Unsubscribe removes the observer and closes its channel.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s]; !ok {
		return
	}
	delete(h.subs, s)
	close(s.C)
}

// Publish delivers an event to every current subscriber without ever
// blocking the caller. Events for subscribers with a full buffer are
// dropped.
func (h *Hub) Publish(kind Kind, payload any) {
	ev := Event{Kind: kind, Payload: payload}

	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs {
		select {
		case s.C <- ev:
		default:
			slog.Debug("event dropped for slow subscriber", "kind", kind)
		}
	}
}

// SubscriberCount returns the number of connected observers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
