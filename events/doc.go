/*
Package events implements the best-effort broadcaster for poll
lifecycle notifications.

Handlers publish after a successful state change:

	hub.Publish(events.PollCreated, poll)
	hub.Publish(events.PollUpdated, poll)
	hub.Publish(events.PollDeleted, events.Deletion{ID: id})

Publish never blocks and never fails the request that triggered it. A
subscriber that falls more than its buffer behind simply misses events;
there is no replay and no acknowledgment. Delivery to websocket clients
lives in the handlers package.
*/
package events
