package events

import (
	"encoding/json"
	"sync"

	"fantasy-auction/utils"
)

// Publisher is the side of the hub the auction service sees. Publishing is
// best-effort: it never blocks and never fails the mutation that caused it.
type Publisher interface {
	Publish(tournamentID string, event any)
}

// Subscription is one observer's handle on a tournament's event stream.
// Messages arrive on C as marshalled JSON; C is closed on Unsubscribe.
type Subscription struct {
	TournamentID string
	C            chan []byte
}

// Hub fans events out to the observers of each tournament. It is the
// process-wide connection registry: created at service start, closed at
// shutdown.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{} // key: tournamentID
	closed bool
}

// subscriptionBuffer bounds how far a slow observer may fall behind before
// events are dropped for it.
const subscriptionBuffer = 64

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe registers an observer for a tournament's events.
func (h *Hub) Subscribe(tournamentID string) *Subscription {
	sub := &Subscription{
		TournamentID: tournamentID,
		C:            make(chan []byte, subscriptionBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(sub.C)
		return sub
	}
	if h.subs[tournamentID] == nil {
		h.subs[tournamentID] = make(map[*Subscription]struct{})
	}
	h.subs[tournamentID][sub] = struct{}{}
	return sub
}

// Unsubscribe removes an observer and closes its channel. Safe to call more
// than once.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[sub.TournamentID]
	if !ok {
		return
	}
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.TournamentID)
	}
	close(sub.C)
}

// Publish marshals the event once and delivers it to every observer of the
// tournament. Observers with a full buffer miss the event; no delivery order
// is guaranteed between observers.
func (h *Hub) Publish(tournamentID string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		utils.Error("hub: failed to marshal event", map[string]any{
			"tournament_id": tournamentID,
			"error":         err.Error(),
		})
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[tournamentID] {
		select {
		case sub.C <- payload:
		default:
			// observer too slow, drop this event for it
		}
	}
}

// Close tears the hub down, closing every subscription channel. Further
// Publish calls are no-ops and further Subscribe calls return a closed
// subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for _, set := range h.subs {
		for sub := range set {
			close(sub.C)
		}
	}
	h.subs = make(map[string]map[*Subscription]struct{})
}

// SubscriberCount reports the number of live observers for a tournament.
func (h *Hub) SubscriberCount(tournamentID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[tournamentID])
}
