package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// decodeSuccess unwraps the {"status":"success","data":...} envelope and
// fails the test on anything else.
func decodeSuccess(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var body struct {
		Status string `json:"status"`
		Data   any    `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	if body.Status != "success" {
		t.Fatalf("status = %q, want success: %s", body.Status, rec.Body.String())
	}
	return body.Data
}
