package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleContactList returns the company's CRM contacts, newest first.
func HandleContactList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		records, err := listCompanyRecords(app, "contacts", companyID)
		if err != nil {
			log.Printf("contact_list: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		contacts := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			contacts = append(contacts, map[string]any{
				"id":      rec.Id,
				"name":    rec.GetString("name"),
				"email":   rec.GetString("email"),
				"phone":   rec.GetString("phone"),
				"address": rec.GetString("address"),
				"notes":   rec.GetString("notes"),
				"created": rec.GetDateTime("created"),
			})
		}
		return jsonSuccess(e, contacts)
	}
}
