package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandleQuoteWatch streams the company's quote changes as server-sent
// events so open dashboards see saves and deletions from other sessions
// without polling. The hub subscription is released when the client
// disconnects; closing the tab is the unsubscribe.
func HandleQuoteWatch(app *pocketbase.PocketBase, hub *services.QuoteWatchHub) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		flusher, ok := e.Response.(http.Flusher)
		if !ok {
			return e.String(http.StatusInternalServerError, "Streaming unsupported")
		}

		e.Response.Header().Set("Content-Type", "text/event-stream")
		e.Response.Header().Set("Cache-Control", "no-cache")
		e.Response.Header().Set("Connection", "keep-alive")
		e.Response.WriteHeader(http.StatusOK)
		flusher.Flush()

		events := make(chan services.QuoteEvent, 16)
		cancel := hub.Subscribe(companyID, func(ev services.QuoteEvent) {
			select {
			case events <- ev:
			default:
				// A stalled client drops events rather than blocking the hub.
			}
		})
		defer cancel()

		ctx := e.Request.Context()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				payload, err := json.Marshal(map[string]any{
					"action": ev.Action,
					"quote":  quoteSummary(ev.Record),
				})
				if err != nil {
					continue
				}
				fmt.Fprintf(e.Response, "event: quote\ndata: %s\n\n", payload)
				flusher.Flush()
			}
		}
	}
}
