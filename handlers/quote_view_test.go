package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tradeworks/services"
	"tradeworks/testhelpers"
)

func TestHandleQuoteView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	testhelpers.CreateTestPricingTable(t, app, company.Id, "pine", map[string]float64{
		"supplyonly": 250,
		"winders":    180,
	})

	quote, err := services.SaveQuote(app, company.Id, services.QuoteInput{
		Title:       "Jones residence",
		ProductType: "pine",
		Quantities:  map[string]string{"supplyonly": "2", "landing": "abc"},
	})
	if err != nil {
		t.Fatalf("failed to save quote: %v", err)
	}

	handler := HandleQuoteView(app)
	req := httptest.NewRequest(http.MethodGet, "/api/app/quotes/"+quote.Id, nil)
	req.SetPathValue("id", quote.Id)
	req = WithCompanyID(req, company.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	data, ok := decodeSuccess(t, rec).(map[string]any)
	if !ok {
		t.Fatalf("unexpected data shape: %s", rec.Body.String())
	}

	quantities, _ := data["quantities"].(map[string]any)
	if quantities["landing"] != "abc" {
		t.Errorf("quantities.landing = %v, want the raw draft text back", quantities["landing"])
	}

	pricing, _ := data["pricing"].(map[string]any)
	if pricing["configured"] != true {
		t.Errorf("pricing.configured = %v, want true", pricing["configured"])
	}

	totals, _ := data["totals"].(map[string]any)
	if totals["total"].(float64) != 550 {
		t.Errorf("totals.total = %v, want 550", totals["total"])
	}

	// Unpriced items are filtered from the visible catalog but their
	// section headings remain.
	catalog, _ := data["catalog"].([]any)
	if len(catalog) != len(services.QuoteCatalog) {
		t.Errorf("catalog sections = %d, want %d", len(catalog), len(services.QuoteCatalog))
	}
}

func TestHandleQuoteView_CrossCompany(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	owner := testhelpers.CreateTestCompany(t, app, "Owner")
	other := testhelpers.CreateTestCompany(t, app, "Other")
	quote := testhelpers.CreateTestQuote(t, app, owner.Id, "Private quote")

	handler := HandleQuoteView(app)
	req := httptest.NewRequest(http.MethodGet, "/api/app/quotes/"+quote.Id, nil)
	req.SetPathValue("id", quote.Id)
	req = WithCompanyID(req, other.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for cross-company view", rec.Code)
	}
}

func TestHandleQuoteView_UnconfiguredPricing(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	quote := testhelpers.CreateTestQuote(t, app, company.Id, "No pricing yet")

	handler := HandleQuoteView(app)
	req := httptest.NewRequest(http.MethodGet, "/api/app/quotes/"+quote.Id, nil)
	req.SetPathValue("id", quote.Id)
	req = WithCompanyID(req, company.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (missing pricing is not an error): %s", rec.Code, rec.Body.String())
	}

	data, _ := decodeSuccess(t, rec).(map[string]any)
	pricing, _ := data["pricing"].(map[string]any)
	if pricing["configured"] != false {
		t.Errorf("pricing.configured = %v, want false", pricing["configured"])
	}
	totals, _ := data["totals"].(map[string]any)
	if totals["subtotal"].(float64) != 0 {
		t.Errorf("subtotal = %v, want 0 for unconfigured pricing", totals["subtotal"])
	}
}
