package events

import (
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/Garrettc123/ai-business-automation-tree/logger"
)

// subscriptionBuffer is the per-subscription channel capacity. A
// subscriber that falls this far behind starts losing events.
const subscriptionBuffer = 256

// Subscription receives every event whose topic matches its pattern.
type Subscription struct {
	id      string
	pattern string
	events  chan Event
}

// ID returns the subscription's unique identifier.
func (s *Subscription) ID() string { return s.id }

// Pattern returns the glob pattern this subscription matches against.
func (s *Subscription) Pattern() string { return s.pattern }

// Events returns the channel lifecycle events arrive on. It is closed
// when the subscription is cancelled or the hub stops.
func (s *Subscription) Events() <-chan Event { return s.events }

// send queues an event for the subscriber.
// Returns false if the channel is full (subscriber is too slow).
func (s *Subscription) send(evt Event) bool {
	select {
	case s.events <- evt:
		return true
	default:
		logger.Warn("[EVENTS] Subscriber behind, dropping event", map[string]interface{}{
			"subscription": s.id,
			"pattern":      s.pattern,
			"topic":        evt.Topic,
		})
		return false
	}
}

func (s *Subscription) close() {
	close(s.events)
}

// Hub routes workflow lifecycle events to pattern subscriptions.
type Hub struct {
	subs        map[string]*Subscription // subscription ID -> subscription
	subscribe   chan *Subscription
	unsubscribe chan *Subscription
	publish     chan Event
	done        chan struct{}
	stopped     bool
	mu          sync.RWMutex // protects subs map for reads during matching
}

// NewHub creates an event hub. Run must be started before subscribing
// or publishing.
func NewHub() *Hub {
	return &Hub{
		subs:        make(map[string]*Subscription),
		subscribe:   make(chan *Subscription),
		unsubscribe: make(chan *Subscription),
		publish:     make(chan Event, 256),
		done:        make(chan struct{}),
	}
}

// Run starts the hub's routing loop. It blocks until Stop is called.
// This should be run in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.closeAll()
			return

		case sub := <-h.subscribe:
			h.mu.Lock()
			h.subs[sub.id] = sub
			h.mu.Unlock()
			logger.Debug("[EVENTS] Subscribed", map[string]interface{}{
				"subscription": sub.id,
				"pattern":      sub.pattern,
			})

		case sub := <-h.unsubscribe:
			h.mu.Lock()
			if _, ok := h.subs[sub.id]; ok {
				delete(h.subs, sub.id)
				sub.close()
			}
			h.mu.Unlock()

		case evt := <-h.publish:
			h.deliver(evt)
		}
	}
}

// Stop signals the hub to shut down. It closes every subscription and
// causes Run to return. Safe to call multiple times.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.stopped {
		h.stopped = true
		close(h.done)
	}
}

// closeAll disconnects all subscriptions during shutdown.
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, sub := range h.subs {
		sub.close()
		delete(h.subs, id)
	}
}

// Subscribe registers interest in topics matching the glob pattern
// (e.g. "branch:*" or "workflow:finalized"). The caller should
// Unsubscribe when done.
func (h *Hub) Subscribe(pattern string) *Subscription {
	sub := &Subscription{
		id:      uuid.NewString(),
		pattern: pattern,
		events:  make(chan Event, subscriptionBuffer),
	}
	h.subscribe <- sub
	return sub
}

// Unsubscribe cancels the subscription and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.unsubscribe <- sub
}

// Publish delivers the event to every matching subscription.
func (h *Hub) Publish(evt Event) {
	h.publish <- evt
}

// deliver routes one event. This is called from the hub's main goroutine.
func (h *Hub) deliver(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		matched, err := filepath.Match(sub.pattern, evt.Topic)
		if err != nil {
			logger.Error("[EVENTS] Bad subscription pattern", map[string]interface{}{
				"pattern": sub.pattern,
				"error":   err.Error(),
			})
			continue
		}
		if matched {
			sub.send(evt)
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Ensure Hub implements Publisher.
var _ Publisher = (*Hub)(nil)
