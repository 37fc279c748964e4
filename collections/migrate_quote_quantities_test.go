package collections_test

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/collections"
	"tradeworks/services"
	"tradeworks/testhelpers"
)

func createLegacyQuote(t *testing.T, app *pocketbase.PocketBase, companyID string, quantities map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}
	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("title", "Legacy quote")
	record.Set("product_type", "pine")
	record.Set("quantities", quantities)
	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save legacy quote: %v", err)
	}
	return record
}

func TestMigrateQuoteQuantityStrings(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")

	legacy := createLegacyQuote(t, app, company.Id, map[string]any{
		"supplyonly":  float64(2),
		"winders":     2.5,
		"handrail":    "3",
		"spiralstair": float64(1),
	})

	if err := collections.MigrateQuoteQuantityStrings(app); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	fresh, err := app.FindRecordById("quotes", legacy.Id)
	if err != nil {
		t.Fatalf("failed to reload quote: %v", err)
	}
	quantities := services.QuoteQuantities(fresh)

	if quantities["supplyonly"] != "2" {
		t.Errorf("supplyonly = %q, want \"2\"", quantities["supplyonly"])
	}
	if quantities["winders"] != "2.5" {
		t.Errorf("winders = %q, want \"2.5\"", quantities["winders"])
	}
	if quantities["handrail"] != "3" {
		t.Errorf("handrail = %q, want \"3\" unchanged", quantities["handrail"])
	}
	if _, ok := quantities["spiralstair"]; ok {
		t.Error("non-catalog identifier survived the migration")
	}
}

func TestMigrateQuoteQuantityStrings_LeavesStringMapsAlone(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	quote := testhelpers.CreateTestQuote(t, app, company.Id, "Already migrated")
	updated := quote.GetDateTime("updated")

	if err := collections.MigrateQuoteQuantityStrings(app); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	fresh, err := app.FindRecordById("quotes", quote.Id)
	if err != nil {
		t.Fatalf("failed to reload quote: %v", err)
	}
	if !fresh.GetDateTime("updated").Time().Equal(updated.Time()) {
		t.Error("migration rewrote a quote that was already in string form")
	}
}
