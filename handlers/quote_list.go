package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandleQuoteList returns the company's quotes, newest first.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		records, err := services.ListQuotes(app, companyID)
		if err != nil {
			log.Printf("quote_list: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		quotes := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			quotes = append(quotes, quoteSummary(rec))
		}
		return jsonSuccess(e, quotes)
	}
}

// quoteSummary is the list-row projection of a quote record.
func quoteSummary(rec *core.Record) map[string]any {
	return map[string]any{
		"id":                 rec.Id,
		"title":              rec.GetString("title"),
		"product_type":       rec.GetString("product_type"),
		"product_type_label": services.ProductTypeLabel(rec.GetString("product_type")),
		"total":              rec.GetFloat("total"),
		"total_display":      services.FormatAUD(rec.GetFloat("total")),
		"created":            rec.GetDateTime("created"),
		"updated":            rec.GetDateTime("updated"),
	}
}
