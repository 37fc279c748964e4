// Package testhelpers provides utilities for testing the PocketBase-backed
// application.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test
// finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCompany creates a company record with the given name.
func CreateTestCompany(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("companies")
	if err != nil {
		t.Fatalf("failed to find companies collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("plan", "standard")
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test company: %v", err)
	}
	return record
}

// CreateTestPricingTable creates a pricing table for a company and product
// type.
func CreateTestPricingTable(t *testing.T, app *pocketbase.PocketBase, companyID, productType string, prices map[string]float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("pricing_tables")
	if err != nil {
		t.Fatalf("failed to find pricing_tables collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("product_type", productType)
	record.Set("prices", prices)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test pricing table: %v", err)
	}
	return record
}

// CreateTestQuote creates a quote record linked to a company.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, companyID, title string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("title", title)
	record.Set("product_type", "pine")
	record.Set("quantities", map[string]string{"supplyonly": "1"})
	record.Set("tax_rate", 0.10)
	record.Set("total", 275.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}
	return record
}

// CreateTestJob creates a job record linked to a company.
func CreateTestJob(t *testing.T, app *pocketbase.PocketBase, companyID, title, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("jobs")
	if err != nil {
		t.Fatalf("failed to find jobs collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("title", title)
	record.Set("client", "Test Client")
	record.Set("status", status)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test job: %v", err)
	}
	return record
}

// CreateTestInvoice creates an invoice record linked to a company.
func CreateTestInvoice(t *testing.T, app *pocketbase.PocketBase, companyID, number, status string, amount, gst float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("invoices")
	if err != nil {
		t.Fatalf("failed to find invoices collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("number", number)
	record.Set("client", "Test Client")
	record.Set("status", status)
	record.Set("amount", amount)
	record.Set("gst", gst)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test invoice: %v", err)
	}
	return record
}

// CreateTestContact creates a CRM contact record linked to a company.
func CreateTestContact(t *testing.T, app *pocketbase.PocketBase, companyID, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("contacts")
	if err != nil {
		t.Fatalf("failed to find contacts collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("name", name)
	record.Set("email", "contact@example.com")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test contact: %v", err)
	}
	return record
}

// CreateTestUser creates a verified user linked to a company. Pass an
// empty companyID for a user with no tenant.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, companyID, email string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("failed to find users collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("email", email)
	record.Set("password", "test-password-123")
	record.Set("verified", true)
	if companyID != "" {
		record.Set("company", companyID)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}
	return record
}

// CreateTestLead creates a captured marketing lead.
func CreateTestLead(t *testing.T, app *pocketbase.PocketBase, name, email string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		t.Fatalf("failed to find leads collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("email", email)
	record.Set("source", "website")
	record.Set("status", "new")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test lead: %v", err)
	}
	return record
}
