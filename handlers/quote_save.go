package handlers

import (
	"errors"
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandleQuoteSave persists a quote draft. With no {id} path value it
// creates a new record; with one it overwrites that record's fields,
// leaving the creation timestamp untouched. A failed save changes nothing
// server-side, so the client keeps its draft and can retry.
func HandleQuoteSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		var input services.QuoteInput
		if err := e.BindBody(&input); err != nil {
			log.Printf("quote_save: bad body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}
		input.ID = e.Request.PathValue("id")

		record, err := services.SaveQuote(app, companyID, input)
		if err != nil {
			var verrs validation.Errors
			if errors.As(err, &verrs) {
				return e.JSON(http.StatusBadRequest, map[string]any{
					"status": "error",
					"errors": verrs,
				})
			}
			if errors.Is(err, services.ErrQuoteNotFound) {
				return e.String(http.StatusNotFound, "Quote not found")
			}
			log.Printf("quote_save: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return jsonSuccess(e, quoteSummary(record))
	}
}
