package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandleCatalogGet returns the full static catalog plus the product type
// options the quote editor offers.
func HandleCatalogGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return jsonSuccess(e, map[string]any{
			"catalog":          services.QuoteCatalog,
			"product_types":    services.ProductTypeOptions,
			"default_tax_rate": services.DefaultTaxRate,
		})
	}
}
