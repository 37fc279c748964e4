package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type contactBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// HandleContactSave creates a contact, or overwrites one when an {id}
// path value is present.
func HandleContactSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		var body contactBody
		if err := e.BindBody(&body); err != nil {
			log.Printf("contact_save: bad body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"status": "error",
				"errors": map[string]string{"name": "Contact name is required"},
			})
		}

		var record *core.Record
		if contactID := e.Request.PathValue("id"); contactID != "" {
			existing, err := findCompanyRecord(app, "contacts", companyID, contactID)
			if err != nil {
				return e.String(http.StatusNotFound, "Contact not found")
			}
			record = existing
		} else {
			col, err := app.FindCollectionByNameOrId("contacts")
			if err != nil {
				log.Printf("contact_save: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
			record = core.NewRecord(col)
			record.Set("company", companyID)
		}

		record.Set("name", body.Name)
		record.Set("email", body.Email)
		record.Set("phone", body.Phone)
		record.Set("address", body.Address)
		record.Set("notes", body.Notes)

		if err := app.Save(record); err != nil {
			log.Printf("contact_save: save: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		return jsonSuccess(e, map[string]any{"id": record.Id})
	}
}
