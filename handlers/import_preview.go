package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandleImportPreview parses an uploaded legacy export (.csv or .xlsx)
// and reports how it would map onto the chosen collection, without
// writing anything. Used by the admin console to scope a migration.
func HandleImportPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		kind := e.Request.PathValue("kind")

		if err := e.Request.ParseMultipartForm(32 << 20); err != nil {
			log.Printf("import_preview: parse form: %v", err)
			return e.String(http.StatusBadRequest, "Invalid upload")
		}
		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return e.String(http.StatusBadRequest, "A file upload is required")
		}
		defer file.Close()

		preview, err := services.PreviewImportFile(file, header.Filename, kind)
		if err != nil {
			log.Printf("import_preview: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]any{
				"status":  "error",
				"message": err.Error(),
			})
		}
		return jsonSuccess(e, preview)
	}
}
