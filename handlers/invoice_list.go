package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandleInvoiceList returns the company's invoices, newest first.
func HandleInvoiceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		records, err := listCompanyRecords(app, "invoices", companyID)
		if err != nil {
			log.Printf("invoice_list: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		invoices := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			total := rec.GetFloat("amount") + rec.GetFloat("gst")
			invoices = append(invoices, map[string]any{
				"id":            rec.Id,
				"number":        rec.GetString("number"),
				"client":        rec.GetString("client"),
				"amount":        rec.GetFloat("amount"),
				"gst":           rec.GetFloat("gst"),
				"total":         total,
				"total_display": services.FormatAUD(total),
				"status":        rec.GetString("status"),
				"quote":         rec.GetString("quote"),
				"issued_on":     rec.GetDateTime("issued_on"),
				"created":       rec.GetDateTime("created"),
			})
		}
		return jsonSuccess(e, invoices)
	}
}
