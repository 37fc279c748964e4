package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleContactDelete removes a contact permanently.
func HandleContactDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)
		contactID := e.Request.PathValue("id")

		record, err := findCompanyRecord(app, "contacts", companyID, contactID)
		if err != nil {
			return e.String(http.StatusNotFound, "Contact not found")
		}
		if err := app.Delete(record); err != nil {
			log.Printf("contact_delete: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		return jsonSuccess(e, map[string]any{"id": contactID})
	}
}
