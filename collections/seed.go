package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// DefaultPricing is the starter pricing template applied when a company is
// provisioned. Unit costs are per catalog identifier; a product type may
// price only a subset of the catalog, and items it omits simply do not
// apply to it.
var DefaultPricing = map[string]map[string]float64{
	"pine": {
		"supplyonly":    250,
		"supplyinstall": 420,
		"winders":       180,
		"landing":       220,
		"bullnose":      95,
		"cutstring":     140,
		"carpetrebate":  -35,
		"post":          85,
		"newel":         120,
		"handrail":      65,
		"wallrail":      48,
		"baluster":      14,
		"delivery":      150,
		"sitemeasure":   90,
		"removal":       280,
	},
	"vicash": {
		"supplyonly":    340,
		"supplyinstall": 520,
		"winders":       240,
		"landing":       300,
		"bullnose":      130,
		"cutstring":     190,
		"openrise":      210,
		"post":          110,
		"newel":         160,
		"handrail":      88,
		"wallrail":      64,
		"baluster":      19,
		"capping":       42,
		"delivery":      150,
		"sitemeasure":   90,
		"removal":       280,
		"extracoat":     75,
	},
}

// Seed creates a demo company with pricing tables and a handful of sample
// records so a fresh install has something to look at. It is a no-op when
// any company already exists.
func Seed(app *pocketbase.PocketBase) error {
	existing, err := app.FindAllRecords("companies")
	if err != nil {
		return fmt.Errorf("seed: check companies: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	companiesCol, err := app.FindCollectionByNameOrId("companies")
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	company := core.NewRecord(companiesCol)
	company.Set("name", "Demo Stairs & Balustrades")
	company.Set("abn", "53 004 085 616")
	company.Set("contact_email", "office@demostairs.example")
	company.Set("plan", "standard")
	company.Set("active", true)
	if err := app.Save(company); err != nil {
		return fmt.Errorf("seed: save company: %w", err)
	}

	if err := SeedCompanyPricing(app, company.Id); err != nil {
		return err
	}

	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	quote := core.NewRecord(quotesCol)
	quote.Set("company", company.Id)
	quote.Set("title", "14 Rise Closed Stair - Smith Residence")
	quote.Set("product_type", "pine")
	quote.Set("quantities", map[string]string{"supplyonly": "1", "winders": "2", "delivery": "1"})
	quote.Set("tax_rate", 0.10)
	quote.Set("total", (250+2*180+150)*1.10)
	if err := app.Save(quote); err != nil {
		return fmt.Errorf("seed: save quote: %w", err)
	}

	jobsCol, err := app.FindCollectionByNameOrId("jobs")
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	job := core.NewRecord(jobsCol)
	job.Set("company", company.Id)
	job.Set("title", "Install - Smith Residence")
	job.Set("client", "J. Smith")
	job.Set("status", "scheduled")
	job.Set("quote", quote.Id)
	if err := app.Save(job); err != nil {
		return fmt.Errorf("seed: save job: %w", err)
	}

	contactsCol, err := app.FindCollectionByNameOrId("contacts")
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	contact := core.NewRecord(contactsCol)
	contact.Set("company", company.Id)
	contact.Set("name", "J. Smith")
	contact.Set("email", "jsmith@example.com")
	contact.Set("phone", "0400 000 000")
	if err := app.Save(contact); err != nil {
		return fmt.Errorf("seed: save contact: %w", err)
	}

	log.Printf("Seeded demo company %s", company.Id)
	return nil
}

// SeedCompanyPricing writes the default pricing template for every product
// type it covers. Used by both Seed and admin provisioning.
func SeedCompanyPricing(app *pocketbase.PocketBase, companyID string) error {
	col, err := app.FindCollectionByNameOrId("pricing_tables")
	if err != nil {
		return fmt.Errorf("seed pricing: %w", err)
	}
	for productType, prices := range DefaultPricing {
		record := core.NewRecord(col)
		record.Set("company", companyID)
		record.Set("product_type", productType)
		record.Set("prices", prices)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed pricing: save %s: %w", productType, err)
		}
	}
	return nil
}
