package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleInvoiceDelete removes an invoice permanently.
func HandleInvoiceDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)
		invoiceID := e.Request.PathValue("id")

		record, err := findCompanyRecord(app, "invoices", companyID, invoiceID)
		if err != nil {
			return e.String(http.StatusNotFound, "Invoice not found")
		}
		if err := app.Delete(record); err != nil {
			log.Printf("invoice_delete: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		return jsonSuccess(e, map[string]any{"id": invoiceID})
	}
}
