package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// addressLookupClient carries the bounded timeout for the upstream call;
// the proxy must never hang a dashboard request on a slow address service.
var addressLookupClient = &http.Client{Timeout: 5 * time.Second}

// HandleAddressLookup proxies autocomplete queries to the configured
// address service so the upstream API key never reaches the browser.
func HandleAddressLookup(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query().Get("q")
		if query == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"status": "error",
				"errors": map[string]string{"q": "A search term is required"},
			})
		}

		base := os.Getenv("TRADEWORKS_ADDRESS_API")
		if base == "" {
			return e.String(http.StatusServiceUnavailable, "Address lookup is not configured")
		}

		upstream := base + "?q=" + url.QueryEscape(query)
		resp, err := addressLookupClient.Get(upstream)
		if err != nil {
			log.Printf("address_lookup: upstream: %v", err)
			return e.String(http.StatusBadGateway, "Address service unavailable")
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("address_lookup: upstream status %d", resp.StatusCode)
			return e.String(http.StatusBadGateway, "Address service unavailable")
		}

		var suggestions json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil {
			log.Printf("address_lookup: decode: %v", err)
			return e.String(http.StatusBadGateway, "Address service unavailable")
		}

		return jsonSuccess(e, suggestions)
	}
}
