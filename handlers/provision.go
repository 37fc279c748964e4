package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/collections"
)

type provisionBody struct {
	Name         string `json:"name"`
	ABN          string `json:"abn"`
	ContactEmail string `json:"contact_email"`
	Plan         string `json:"plan"`
	Lead         string `json:"lead"`
}

// HandleProvisionCompany creates a new tenant: the company record plus its
// starter pricing tables. When the signup came from a captured lead, the
// lead is marked converted. Admin console only.
func HandleProvisionCompany(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body provisionBody
		if err := e.BindBody(&body); err != nil {
			log.Printf("provision: bad body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"status": "error",
				"errors": map[string]string{"name": "Company name is required"},
			})
		}
		if body.Plan == "" {
			body.Plan = "starter"
		}

		col, err := app.FindCollectionByNameOrId("companies")
		if err != nil {
			log.Printf("provision: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		company := core.NewRecord(col)
		company.Set("name", body.Name)
		company.Set("abn", body.ABN)
		company.Set("contact_email", body.ContactEmail)
		company.Set("plan", body.Plan)
		company.Set("active", true)

		if err := app.Save(company); err != nil {
			log.Printf("provision: save company: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		if err := collections.SeedCompanyPricing(app, company.Id); err != nil {
			// The company exists; report it with the pricing gap rather than
			// leaving the admin guessing which half succeeded.
			log.Printf("provision: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{
				"status":  "error",
				"message": "Company created but pricing setup failed",
				"data":    map[string]any{"company_id": company.Id},
			})
		}

		if body.Lead != "" {
			if lead, err := app.FindRecordById("leads", body.Lead); err == nil {
				lead.Set("status", "converted")
				if err := app.Save(lead); err != nil {
					log.Printf("provision: mark lead converted: %v", err)
				}
			}
		}

		return jsonSuccess(e, map[string]any{"company_id": company.Id})
	}
}
