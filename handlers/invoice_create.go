package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

type invoiceBody struct {
	Number string `json:"number"`
	Client string `json:"client"`
	Quote  string `json:"quote"`
}

// HandleInvoiceCreate raises an invoice from a saved quote: the quote's
// materialized totals are copied onto the invoice at creation time and do
// not track later quote edits.
func HandleInvoiceCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		var body invoiceBody
		if err := e.BindBody(&body); err != nil {
			log.Printf("invoice_create: bad body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}
		if body.Quote == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"status": "error",
				"errors": map[string]string{"quote": "A quote is required"},
			})
		}

		quote, err := services.GetQuote(app, companyID, body.Quote)
		if err != nil {
			if errors.Is(err, services.ErrQuoteNotFound) {
				return e.String(http.StatusNotFound, "Quote not found")
			}
			log.Printf("invoice_create: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		number := strings.TrimSpace(body.Number)
		if number == "" {
			number = nextInvoiceNumber(app, companyID)
		}

		total := quote.GetFloat("total")
		taxRate := quote.GetFloat("tax_rate")
		// total = amount * (1 + rate); recover the pre-GST amount
		amount := total
		if taxRate > 0 {
			amount = total / (1 + taxRate)
		}

		col, err := app.FindCollectionByNameOrId("invoices")
		if err != nil {
			log.Printf("invoice_create: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		record := core.NewRecord(col)
		record.Set("company", companyID)
		record.Set("number", number)
		record.Set("client", body.Client)
		record.Set("amount", amount)
		record.Set("gst", total-amount)
		record.Set("status", "draft")
		record.Set("quote", quote.Id)
		record.Set("issued_on", time.Now().UTC().Format("2006-01-02"))

		if err := app.Save(record); err != nil {
			log.Printf("invoice_create: save: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		return jsonSuccess(e, map[string]any{"id": record.Id, "number": number})
	}
}

// nextInvoiceNumber derives a sequential display number from the
// company's invoice count. Collisions after deletions are acceptable; the
// number is a label, not a key.
func nextInvoiceNumber(app *pocketbase.PocketBase, companyID string) string {
	records, err := listCompanyRecords(app, "invoices", companyID)
	if err != nil {
		return fmt.Sprintf("INV-%d", time.Now().Unix())
	}
	return fmt.Sprintf("INV-%04d", len(records)+1)
}
