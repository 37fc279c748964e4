package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleJobDelete removes a job permanently.
func HandleJobDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)
		jobID := e.Request.PathValue("id")

		record, err := findCompanyRecord(app, "jobs", companyID, jobID)
		if err != nil {
			return e.String(http.StatusNotFound, "Job not found")
		}
		if err := app.Delete(record); err != nil {
			log.Printf("job_delete: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		return jsonSuccess(e, map[string]any{"id": jobID})
	}
}
