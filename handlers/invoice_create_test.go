package handlers

import (
	"math"
	"net/http"
	"testing"

	"tradeworks/testhelpers"
)

func TestHandleInvoiceCreate_FromQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	quote := testhelpers.CreateTestQuote(t, app, company.Id, "Jones residence")
	handler := HandleInvoiceCreate(app)

	req, rec := postJSON(t, "/api/app/invoices", `{"quote": "`+quote.Id+`", "client": "Jones"}`)
	req = WithCompanyID(req, company.Id)

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	data, _ := decodeSuccess(t, rec).(map[string]any)
	if data["number"] != "INV-0001" {
		t.Errorf("number = %v, want INV-0001", data["number"])
	}

	invoice, err := app.FindRecordById("invoices", data["id"].(string))
	if err != nil {
		t.Fatalf("invoice not persisted: %v", err)
	}
	// The test quote totals 275 at 10% GST: 250 ex-GST plus 25 GST.
	if got := invoice.GetFloat("amount"); math.Abs(got-250) > 1e-9 {
		t.Errorf("amount = %v, want 250", got)
	}
	if got := invoice.GetFloat("gst"); math.Abs(got-25) > 1e-9 {
		t.Errorf("gst = %v, want 25", got)
	}
	if invoice.GetString("status") != "draft" {
		t.Errorf("status = %q, want draft", invoice.GetString("status"))
	}
	if invoice.GetString("quote") != quote.Id {
		t.Errorf("quote link = %q, want %q", invoice.GetString("quote"), quote.Id)
	}
}

func TestHandleInvoiceCreate_SequentialNumbers(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	quote := testhelpers.CreateTestQuote(t, app, company.Id, "Repeat customer")
	handler := HandleInvoiceCreate(app)

	for i, want := range []string{"INV-0001", "INV-0002"} {
		req, rec := postJSON(t, "/api/app/invoices", `{"quote": "`+quote.Id+`"}`)
		req = WithCompanyID(req, company.Id)

		if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("invoice %d: handler returned error: %v", i, err)
		}
		data, _ := decodeSuccess(t, rec).(map[string]any)
		if data["number"] != want {
			t.Errorf("invoice %d number = %v, want %s", i, data["number"], want)
		}
	}
}

func TestHandleInvoiceCreate_RequiresQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	handler := HandleInvoiceCreate(app)

	req, rec := postJSON(t, "/api/app/invoices", `{"client": "No quote"}`)
	req = WithCompanyID(req, company.Id)

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleInvoiceCreate_CrossCompanyQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	mine := testhelpers.CreateTestCompany(t, app, "Mine")
	theirs := testhelpers.CreateTestCompany(t, app, "Theirs")
	quote := testhelpers.CreateTestQuote(t, app, theirs.Id, "Not mine")
	handler := HandleInvoiceCreate(app)

	req, rec := postJSON(t, "/api/app/invoices", `{"quote": "`+quote.Id+`"}`)
	req = WithCompanyID(req, mine.Id)

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleInvoiceStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	invoice := testhelpers.CreateTestInvoice(t, app, company.Id, "INV-0001", "sent", 250, 25)
	handler := HandleInvoiceStatus(app)

	req, rec := postJSON(t, "/api/app/invoices/"+invoice.Id+"/status", `{"status": "paid"}`)
	req.SetPathValue("id", invoice.Id)
	req = WithCompanyID(req, company.Id)

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	fresh, err := app.FindRecordById("invoices", invoice.Id)
	if err != nil {
		t.Fatalf("invoice disappeared: %v", err)
	}
	if fresh.GetString("status") != "paid" {
		t.Errorf("status = %q, want paid", fresh.GetString("status"))
	}
}

func TestHandleInvoiceStatus_UnknownStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	invoice := testhelpers.CreateTestInvoice(t, app, company.Id, "INV-0001", "sent", 250, 25)
	handler := HandleInvoiceStatus(app)

	req, rec := postJSON(t, "/api/app/invoices/"+invoice.Id+"/status", `{"status": "overdue"}`)
	req.SetPathValue("id", invoice.Id)
	req = WithCompanyID(req, company.Id)

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for an unknown workflow state", rec.Code)
	}
}
