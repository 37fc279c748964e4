package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tradeworks/services"
	"tradeworks/testhelpers"
)

func TestHandleQuoteWatch_StreamsCompanyEvents(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	hub := services.NewQuoteWatchHub(app)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")
	handler := HandleQuoteWatch(app, hub)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/app/quotes/watch", nil).WithContext(ctx)
	req = WithCompanyID(req, company.Id)
	rec := httptest.NewRecorder()

	done := make(chan error, 1)
	go func() {
		done <- handler(newTestRequestEvent(app, req, rec))
	}()

	// Wait until the handler has registered its subscription.
	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("handler never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	testhelpers.CreateTestQuote(t, app, company.Id, "Streamed quote")
	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after the client disconnected")
	}

	if hub.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount = %d after disconnect, want 0", hub.SubscriberCount())
	}

	body := rec.Body.String()
	if !strings.Contains(body, "event: quote") {
		t.Errorf("no quote event in stream: %q", body)
	}
	if !strings.Contains(body, "Streamed quote") {
		t.Errorf("quote payload missing from stream: %q", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", ct)
	}
}

func TestHandleQuoteWatch_IgnoresOtherCompanies(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	hub := services.NewQuoteWatchHub(app)
	mine := testhelpers.CreateTestCompany(t, app, "Mine")
	theirs := testhelpers.CreateTestCompany(t, app, "Theirs")
	handler := HandleQuoteWatch(app, hub)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/app/quotes/watch", nil).WithContext(ctx)
	req = WithCompanyID(req, mine.Id)
	rec := httptest.NewRecorder()

	done := make(chan error, 1)
	go func() {
		done <- handler(newTestRequestEvent(app, req, rec))
	}()

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("handler never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	testhelpers.CreateTestQuote(t, app, theirs.Id, "Foreign quote")
	time.Sleep(200 * time.Millisecond)
	cancel()
	<-done

	if strings.Contains(rec.Body.String(), "Foreign quote") {
		t.Errorf("another company's quote leaked into the stream: %q", rec.Body.String())
	}
}
