package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

type invoiceStatusBody struct {
	Status string `json:"status"`
}

// HandleInvoiceStatus moves an invoice between draft, sent and paid.
func HandleInvoiceStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)
		invoiceID := e.Request.PathValue("id")

		var body invoiceStatusBody
		if err := e.BindBody(&body); err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		valid := false
		for _, opt := range services.InvoiceStatusOptions {
			if opt.Value == body.Status {
				valid = true
				break
			}
		}
		if !valid {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"status": "error",
				"errors": map[string]string{"status": "Unknown invoice status"},
			})
		}

		record, err := findCompanyRecord(app, "invoices", companyID, invoiceID)
		if err != nil {
			return e.String(http.StatusNotFound, "Invoice not found")
		}

		record.Set("status", body.Status)
		if err := app.Save(record); err != nil {
			log.Printf("invoice_status: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		return jsonSuccess(e, map[string]any{"id": invoiceID, "status": body.Status})
	}
}
