package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleJobList returns the company's jobs, newest first.
func HandleJobList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		records, err := listCompanyRecords(app, "jobs", companyID)
		if err != nil {
			log.Printf("job_list: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		jobs := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			jobs = append(jobs, map[string]any{
				"id":            rec.Id,
				"title":         rec.GetString("title"),
				"client":        rec.GetString("client"),
				"status":        rec.GetString("status"),
				"quote":         rec.GetString("quote"),
				"scheduled_for": rec.GetDateTime("scheduled_for"),
				"notes":         rec.GetString("notes"),
				"created":       rec.GetDateTime("created"),
			})
		}
		return jsonSuccess(e, jobs)
	}
}
