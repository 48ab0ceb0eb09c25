package events

// Publisher accepts lifecycle events for delivery to subscribers.
// It lets the automation system depend on an abstraction rather than
// a concrete Hub.
type Publisher interface {
	// Publish delivers the event to every subscription whose pattern
	// matches the event's topic.
	Publish(evt Event)
}

// Discard is a Publisher that drops every event. It stands in when no
// hub is wired, so publishers never need a nil check.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(Event) {}
