package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDispatch    EventType = "dispatch"
	EventSubscribe   EventType = "subscribe"
	EventUnsubscribe EventType = "unsubscribe"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Store     string    `json:"store,omitempty"`
}

// DispatchEvent describes one completed dispatch, including its notification pass.
type DispatchEvent struct {
	EventBase
	Kind        string        `json:"kind"`
	Duration    time.Duration `json:"duration"`
	Subscribers int           `json:"subscribers"` // Callbacks actually notified
	Err         error         `json:"-"`
}

// SubscriptionEvent describes a change in the subscriber registry.
type SubscriptionEvent struct {
	EventBase
	Handle string `json:"handle"`
	Active int    `json:"active"` // Registry size after the change
}

// LifecycleHooks defines callbacks for store observability.
// Hooks run synchronously on the dispatching goroutine, outside the store lock.
type LifecycleHooks struct {
	OnDispatch    func(*DispatchEvent)
	OnSubscribe   func(*SubscriptionEvent)
	OnUnsubscribe func(*SubscriptionEvent)
}
