package collections_test

import (
	"testing"

	"tradeworks/collections"
	"tradeworks/testhelpers"
)

func TestSetup_CreatesCollections(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	names := []string{
		"companies", "pricing_tables", "quotes", "jobs",
		"invoices", "contacts", "staff_documents", "leads",
	}
	for _, name := range names {
		if _, err := app.FindCollectionByNameOrId(name); err != nil {
			t.Errorf("collection %q missing after setup: %v", name, err)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// NewTestApp already ran Setup once; a second run must not fail or
	// duplicate anything.
	collections.Setup(app)

	quotes, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("quotes collection missing: %v", err)
	}
	if quotes.Fields.GetByName("title") == nil {
		t.Error("quotes.title field missing after re-run")
	}
}

func TestSetup_UsersCarryCompanyField(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	users, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("users collection missing: %v", err)
	}
	if users.Fields.GetByName("company") == nil {
		t.Error("users collection is missing the company tenant field")
	}
}

func TestSetup_QuoteCreatedStampedOnceOnly(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	quote := testhelpers.CreateTestQuote(t, app, company.Id, "Timestamps")

	created := quote.GetDateTime("created")
	if created.IsZero() {
		t.Fatal("created not stamped on create")
	}

	quote.Set("title", "Timestamps (edited)")
	if err := app.Save(quote); err != nil {
		t.Fatalf("failed to update quote: %v", err)
	}

	fresh, err := app.FindRecordById("quotes", quote.Id)
	if err != nil {
		t.Fatalf("failed to reload quote: %v", err)
	}
	if !fresh.GetDateTime("created").Time().Equal(created.Time()) {
		t.Errorf("created changed on update: %v -> %v", created, fresh.GetDateTime("created"))
	}
}
