package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

type leadBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

func (b leadBody) validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&b.Email, validation.Required, is.EmailFormat),
		validation.Field(&b.Message, validation.Length(0, 5000)),
	)
}

// HandleLeadCreate records a marketing-site enquiry and relays it to the
// sales inbox. Public route. The record is saved first; a mail relay
// failure is logged but never turned into an error the visitor sees.
func HandleLeadCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body leadBody
		if err := e.BindBody(&body); err != nil {
			log.Printf("lead_create: bad body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		body.Email = strings.TrimSpace(body.Email)

		if err := body.validate(); err != nil {
			var verrs validation.Errors
			if !errors.As(err, &verrs) {
				log.Printf("lead_create: validate: %v", err)
				return e.String(http.StatusBadRequest, "Invalid request")
			}
			return e.JSON(http.StatusBadRequest, map[string]any{
				"status": "error",
				"errors": verrs,
			})
		}
		if body.Source == "" {
			body.Source = "website"
		}

		col, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			log.Printf("lead_create: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		record := core.NewRecord(col)
		record.Set("name", body.Name)
		record.Set("email", body.Email)
		record.Set("phone", body.Phone)
		record.Set("message", body.Message)
		record.Set("source", body.Source)
		record.Set("status", "new")

		if err := app.Save(record); err != nil {
			log.Printf("lead_create: save: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		if err := services.NotifyLead(app, record); err != nil {
			log.Printf("lead_create: %v", err)
		}

		return jsonSuccess(e, map[string]any{"id": record.Id})
	}
}
