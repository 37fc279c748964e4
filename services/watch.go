package services

import (
	"sync"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// QuoteEvent describes one change to the quotes collection.
type QuoteEvent struct {
	Action string // "create", "update" or "delete"
	Record *core.Record
}

// QuoteWatchHub fans quote changes out to per-company subscribers so a
// dashboard list reflects edits from other sessions without refreshing.
// Construct one hub per app; it binds the record hooks once and routes
// every event through its subscriber table.
type QuoteWatchHub struct {
	mu   sync.RWMutex
	next uint64
	subs map[uint64]quoteSub
}

type quoteSub struct {
	companyID string
	fn        func(QuoteEvent)
}

// NewQuoteWatchHub creates the hub and attaches it to the app's quote
// record hooks.
func NewQuoteWatchHub(app *pocketbase.PocketBase) *QuoteWatchHub {
	hub := &QuoteWatchHub{subs: make(map[uint64]quoteSub)}

	app.OnRecordAfterCreateSuccess("quotes").BindFunc(func(e *core.RecordEvent) error {
		hub.dispatch(QuoteEvent{Action: "create", Record: e.Record})
		return e.Next()
	})
	app.OnRecordAfterUpdateSuccess("quotes").BindFunc(func(e *core.RecordEvent) error {
		hub.dispatch(QuoteEvent{Action: "update", Record: e.Record})
		return e.Next()
	})
	app.OnRecordAfterDeleteSuccess("quotes").BindFunc(func(e *core.RecordEvent) error {
		hub.dispatch(QuoteEvent{Action: "delete", Record: e.Record})
		return e.Next()
	})

	return hub
}

// Subscribe registers fn for every quote change belonging to companyID and
// returns the cancel function that releases the subscription. Callers must
// invoke cancel when the viewing context is torn down; nothing else frees
// the slot.
func (h *QuoteWatchHub) Subscribe(companyID string, fn func(QuoteEvent)) (cancel func()) {
	h.mu.Lock()
	h.next++
	id := h.next
	h.subs[id] = quoteSub{companyID: companyID, fn: fn}
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// SubscriberCount reports the number of live subscriptions.
func (h *QuoteWatchHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *QuoteWatchHub) dispatch(ev QuoteEvent) {
	company := ev.Record.GetString("company")

	h.mu.RLock()
	var targets []func(QuoteEvent)
	for _, sub := range h.subs {
		if sub.companyID == company {
			targets = append(targets, sub.fn)
		}
	}
	h.mu.RUnlock()

	// Deliver outside the lock; a subscriber that re-subscribes or cancels
	// from its callback must not deadlock.
	for _, fn := range targets {
		fn(ev)
	}
}
