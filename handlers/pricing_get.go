package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandlePricingGet returns the pricing table and visible catalog for one
// product type. A product type with no pricing configured is a normal
// response with an empty table, not an error; the client renders it as
// "no items available".
func HandlePricingGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)
		productType := e.Request.PathValue("productType")

		table, err := services.LoadPricingTable(app, companyID, productType)
		if err != nil {
			log.Printf("pricing_get: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return jsonSuccess(e, map[string]any{
			"product_type": productType,
			"configured":   table.Configured(),
			"prices":       table,
			"catalog":      services.VisibleCatalog(services.QuoteCatalog, table),
		})
	}
}
