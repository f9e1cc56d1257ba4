package changefeed

import "sync"

// Filter decides whether an event is delivered to a subscription. A nil filter
// accepts everything.
type Filter func(Event) bool

// Subscription is a live feed of change events for a set of tables.
// Events arrive on C until Close is called; Close is idempotent and releases
// the subscription deterministically.
type Subscription struct {
	C chan Event

	hub    *Hub
	tables map[string]struct{}
	filter Filter
	once   sync.Once
}

// Close unregisters the subscription and closes C.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
		close(s.C)
	})
}

func (s *Subscription) wants(ev Event) bool {
	if len(s.tables) > 0 {
		if _, ok := s.tables[ev.Table]; !ok {
			return false
		}
	}
	return s.filter == nil || s.filter(ev)
}

// Hub fans change events out to subscriptions. Delivery is best-effort: a
// subscriber whose channel is full loses the event instead of blocking the
// broadcaster; the subsequent re-fetch reflects current store state anyway.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

// NewHub builds an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers a subscription for the given tables (empty = all) with an
// optional filter.
func (h *Hub) Subscribe(tables []string, filter Filter) *Subscription {
	sub := &Subscription{
		C:      make(chan Event, 16),
		hub:    h,
		filter: filter,
	}
	if len(tables) > 0 {
		sub.tables = make(map[string]struct{}, len(tables))
		for _, t := range tables {
			sub.tables[t] = struct{}{}
		}
	}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Broadcast delivers ev to every matching subscription without blocking.
func (h *Hub) Broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if !sub.wants(ev) {
			continue
		}
		select {
		case sub.C <- ev:
		default: // subscriber too slow, drop
		}
	}
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
