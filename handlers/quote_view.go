package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandleQuoteView loads a single quote for editing: the stored draft
// fields verbatim, the pricing table behind its product type, the visible
// catalog, and freshly computed totals.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)
		quoteID := e.Request.PathValue("id")

		quote, err := services.GetQuote(app, companyID, quoteID)
		if err != nil {
			if errors.Is(err, services.ErrQuoteNotFound) {
				return e.String(http.StatusNotFound, "Quote not found")
			}
			log.Printf("quote_view: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		table, err := services.LoadPricingTable(app, companyID, quote.GetString("product_type"))
		if err != nil {
			log.Printf("quote_view: load pricing: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		quantities := services.QuoteQuantities(quote)
		extra := services.QuoteExtraCost(quote)
		taxRate := quote.GetFloat("tax_rate")
		totals := services.ComputeQuoteTotals(services.QuoteCatalog, table, quantities, extra, taxRate)

		return jsonSuccess(e, map[string]any{
			"id":           quote.Id,
			"title":        quote.GetString("title"),
			"product_type": quote.GetString("product_type"),
			"quantities":   quantities,
			"extra":        extra,
			"tax_rate":     taxRate,
			"created":      quote.GetDateTime("created"),
			"pricing": map[string]any{
				"configured": table.Configured(),
				"prices":     table,
			},
			"catalog": services.VisibleCatalog(services.QuoteCatalog, table),
			"totals":  totals,
		})
	}
}
