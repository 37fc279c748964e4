package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandleQuoteDelete removes a quote permanently. Deleting a quote another
// company owns reports not found.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		if err := services.DeleteQuote(app, companyID, quoteID); err != nil {
			if errors.Is(err, services.ErrQuoteNotFound) {
				return e.String(http.StatusNotFound, "Quote not found")
			}
			log.Printf("quote_delete: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return jsonSuccess(e, map[string]any{"id": quoteID})
	}
}
