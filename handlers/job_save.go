package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

type jobBody struct {
	Title        string `json:"title"`
	Client       string `json:"client"`
	Status       string `json:"status"`
	Quote        string `json:"quote"`
	ScheduledFor string `json:"scheduled_for"`
	Notes        string `json:"notes"`
}

// HandleJobSave creates a job, or overwrites one when an {id} path value
// is present.
func HandleJobSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		var body jobBody
		if err := e.BindBody(&body); err != nil {
			log.Printf("job_save: bad body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"status": "error",
				"errors": map[string]string{"title": "Job title is required"},
			})
		}
		if body.Status == "" {
			body.Status = "scheduled"
		}

		// A linked quote must belong to the same company.
		if body.Quote != "" {
			if _, err := services.GetQuote(app, companyID, body.Quote); err != nil {
				return e.String(http.StatusNotFound, "Linked quote not found")
			}
		}

		var record *core.Record
		if jobID := e.Request.PathValue("id"); jobID != "" {
			existing, err := findCompanyRecord(app, "jobs", companyID, jobID)
			if err != nil {
				return e.String(http.StatusNotFound, "Job not found")
			}
			record = existing
		} else {
			col, err := app.FindCollectionByNameOrId("jobs")
			if err != nil {
				log.Printf("job_save: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
			record = core.NewRecord(col)
			record.Set("company", companyID)
		}

		record.Set("title", body.Title)
		record.Set("client", body.Client)
		record.Set("status", body.Status)
		record.Set("quote", body.Quote)
		record.Set("scheduled_for", body.ScheduledFor)
		record.Set("notes", body.Notes)

		if err := app.Save(record); err != nil {
			log.Printf("job_save: save: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		return jsonSuccess(e, map[string]any{"id": record.Id})
	}
}
