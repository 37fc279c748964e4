package handlers

import (
	"net/http"
	"testing"

	"tradeworks/testhelpers"
)

func TestHandleAccountingSync_Quote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	quote := testhelpers.CreateTestQuote(t, app, company.Id, "Synced quote")
	handler := HandleAccountingSync(app)

	req, rec := postJSON(t, "/api/app/accounting/sync", `{"record_id": "`+quote.Id+`", "type": "quote"}`)
	req = WithCompanyID(req, company.Id)

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	data, _ := decodeSuccess(t, rec).(map[string]any)
	if data["sync_id"] == "" || data["sync_id"] == nil {
		t.Error("expected a sync_id in the response")
	}
	if data["record_id"] != quote.Id {
		t.Errorf("record_id = %v, want %q", data["record_id"], quote.Id)
	}
}

func TestHandleAccountingSync_Invoice(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	invoice := testhelpers.CreateTestInvoice(t, app, company.Id, "INV-0001", "sent", 250, 25)
	handler := HandleAccountingSync(app)

	req, rec := postJSON(t, "/api/app/accounting/sync", `{"record_id": "`+invoice.Id+`", "type": "invoice"}`)
	req = WithCompanyID(req, company.Id)

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleAccountingSync_UnknownType(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	handler := HandleAccountingSync(app)

	req, rec := postJSON(t, "/api/app/accounting/sync", `{"record_id": "abc", "type": "payroll"}`)
	req = WithCompanyID(req, company.Id)

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleAccountingSync_CrossCompanyRecord(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	mine := testhelpers.CreateTestCompany(t, app, "Mine")
	theirs := testhelpers.CreateTestCompany(t, app, "Theirs")
	quote := testhelpers.CreateTestQuote(t, app, theirs.Id, "Not mine")
	handler := HandleAccountingSync(app)

	req, rec := postJSON(t, "/api/app/accounting/sync", `{"record_id": "`+quote.Id+`", "type": "quote"}`)
	req = WithCompanyID(req, mine.Id)

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
