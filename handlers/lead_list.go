package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleLeadList returns all captured leads, newest first. Admin console
// only.
func HandleLeadList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("leads", "id != ''", "-created", 0, 0, map[string]any{})
		if err != nil {
			log.Printf("lead_list: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		leads := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			leads = append(leads, map[string]any{
				"id":      rec.Id,
				"name":    rec.GetString("name"),
				"email":   rec.GetString("email"),
				"phone":   rec.GetString("phone"),
				"message": rec.GetString("message"),
				"source":  rec.GetString("source"),
				"status":  rec.GetString("status"),
				"created": rec.GetDateTime("created"),
			})
		}
		return jsonSuccess(e, leads)
	}
}
