package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tradeworks/testhelpers"
)

func TestHandleLeadList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestLead(t, app, "Sam Builder", "sam@example.com")
	testhelpers.CreateTestLead(t, app, "Alex Carpenter", "alex@example.com")
	handler := HandleLeadList(app)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	leads, ok := decodeSuccess(t, rec).([]any)
	if !ok {
		t.Fatalf("unexpected data shape: %s", rec.Body.String())
	}
	if len(leads) != 2 {
		t.Errorf("got %d leads, want 2", len(leads))
	}
}
