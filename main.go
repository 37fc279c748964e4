package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/collections"
	"tradeworks/handlers"
	"tradeworks/services"
)

func main() {
	if err := services.ValidateCatalog(services.QuoteCatalog); err != nil {
		log.Fatalf("invalid quote catalog: %v", err)
	}

	app := pocketbase.New()

	// Create collections, seed demo data and run migrations on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateQuoteQuantityStrings(app); err != nil {
			log.Printf("Warning: quantity migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Marketing site assets
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		hub := services.NewQuoteWatchHub(app)

		// ── Public marketing surface ─────────────────────────────
		se.Router.POST("/api/leads", handlers.HandleLeadCreate(app))

		// ── Client dashboard (authenticated, company-scoped) ─────
		dash := se.Router.Group("/api/app")
		dash.Bind(apis.RequireAuth("users"))
		dash.BindFunc(handlers.RequireCompany(app))

		dash.GET("/catalog", handlers.HandleCatalogGet(app))
		dash.GET("/pricing/{productType}", handlers.HandlePricingGet(app))

		dash.GET("/quotes", handlers.HandleQuoteList(app))
		dash.GET("/quotes/watch", handlers.HandleQuoteWatch(app, hub))
		dash.POST("/quotes", handlers.HandleQuoteSave(app))
		dash.GET("/quotes/{id}", handlers.HandleQuoteView(app))
		dash.POST("/quotes/{id}", handlers.HandleQuoteSave(app))
		dash.DELETE("/quotes/{id}", handlers.HandleQuoteDelete(app))
		dash.GET("/quotes/{id}/pdf", handlers.HandleQuotePDF(app))

		dash.GET("/jobs", handlers.HandleJobList(app))
		dash.POST("/jobs", handlers.HandleJobSave(app))
		dash.POST("/jobs/{id}", handlers.HandleJobSave(app))
		dash.DELETE("/jobs/{id}", handlers.HandleJobDelete(app))

		dash.GET("/invoices", handlers.HandleInvoiceList(app))
		dash.POST("/invoices", handlers.HandleInvoiceCreate(app))
		dash.PATCH("/invoices/{id}/status", handlers.HandleInvoiceStatus(app))
		dash.DELETE("/invoices/{id}", handlers.HandleInvoiceDelete(app))

		dash.GET("/contacts", handlers.HandleContactList(app))
		dash.POST("/contacts", handlers.HandleContactSave(app))
		dash.POST("/contacts/{id}", handlers.HandleContactSave(app))
		dash.DELETE("/contacts/{id}", handlers.HandleContactDelete(app))

		dash.GET("/staff-documents", handlers.HandleStaffDocList(app))
		dash.GET("/metrics", handlers.HandleDashboardMetrics(app))

		dash.POST("/accounting/sync", handlers.HandleAccountingSync(app))
		dash.GET("/address-lookup", handlers.HandleAddressLookup(app))

		// ── Admin console ────────────────────────────────────────
		admin := se.Router.Group("/api/admin")
		admin.Bind(apis.RequireSuperuserAuth())

		admin.GET("/leads", handlers.HandleLeadList(app))
		admin.POST("/companies", handlers.HandleProvisionCompany(app))
		admin.POST("/import-preview/{kind}", handlers.HandleImportPreview(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
