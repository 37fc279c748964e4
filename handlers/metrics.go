package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandleDashboardMetrics returns the company's summary figures.
func HandleDashboardMetrics(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		metrics, err := services.LoadDashboardMetrics(app, companyID)
		if err != nil {
			log.Printf("metrics: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		return jsonSuccess(e, metrics)
	}
}
