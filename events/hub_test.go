package events

import (
	"testing"
	"time"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	a := hub.Subscribe()
	b := hub.Subscribe()
	defer hub.Unsubscribe(a)
	defer hub.Unsubscribe(b)

	hub.Publish(PollCreated, map[string]string{"id": "p1"})

	for _, sub := range []*Subscriber{a, b} {
		select {
		case ev := <-sub.C:
			if ev.Kind != PollCreated {
				t.Errorf("Expected kind %q, got %q", PollCreated, ev.Kind)
			}
		case <-time.After(time.Second):
			t.Fatal("Expected event to be delivered")
		}
	}
}

func TestPublishWithNoSubscribers(t *testing.T) {
	hub := NewHub()
	// Must not panic or block
	hub.Publish(PollUpdated, nil)
}

func TestSlowSubscriberDropsEvents(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	// Overflow the buffer without draining; Publish must never block
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			hub.Publish(PollUpdated, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	// The subscriber holds at most its buffer; everything else dropped
	received := 0
	for {
		select {
		case <-sub.C:
			received++
			continue
		default:
		}
		break
	}
	if received != subscriberBuffer {
		t.Errorf("Expected %d buffered events, got %d", subscriberBuffer, received)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe()
	if hub.SubscriberCount() != 1 {
		t.Fatalf("Expected 1 subscriber, got %d", hub.SubscriberCount())
	}

	hub.Unsubscribe(sub)
	if hub.SubscriberCount() != 0 {
		t.Errorf("Expected 0 subscribers, got %d", hub.SubscriberCount())
	}

	if _, ok := <-sub.C; ok {
		t.Error("Expected channel to be closed after Unsubscribe")
	}

	// Double unsubscribe is a no-op
	hub.Unsubscribe(sub)

	// Publishing after unsubscribe must not panic
	hub.Publish(PollDeleted, Deletion{ID: "p1"})
}

func TestUnsubscribedObserverMissesEvents(t *testing.T) {
	hub := NewHub()

	a := hub.Subscribe()
	b := hub.Subscribe()
	hub.Unsubscribe(a)

	hub.Publish(PollUpdated, nil)

	select {
	case ev := <-b.C:
		if ev.Kind != PollUpdated {
			t.Errorf("Expected kind %q, got %q", PollUpdated, ev.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected remaining subscriber to receive the event")
	}

	hub.Unsubscribe(b)
}
