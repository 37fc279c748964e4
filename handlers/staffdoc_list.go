package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandleStaffDocList returns the company's HR documents. Uploads go
// through PocketBase's own record API; this endpoint only lists.
func HandleStaffDocList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)

		records, err := listCompanyRecords(app, "staff_documents", companyID)
		if err != nil {
			log.Printf("staffdoc_list: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		docs := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			docType := rec.GetString("doc_type")
			docs = append(docs, map[string]any{
				"id":             rec.Id,
				"staff_name":     rec.GetString("staff_name"),
				"doc_type":       docType,
				"doc_type_label": optionLabel(services.StaffDocTypeOptions, docType),
				"file":           rec.GetString("file"),
				"expires_on":     rec.GetDateTime("expires_on"),
				"created":        rec.GetDateTime("created"),
			})
		}
		return jsonSuccess(e, docs)
	}
}

// optionLabel resolves an option value to its label, falling back to the
// value itself.
func optionLabel(opts []services.Option, value string) string {
	for _, opt := range opts {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
