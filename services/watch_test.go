package services_test

import (
	"testing"

	"tradeworks/services"
	"tradeworks/testhelpers"
)

func TestQuoteWatchHub_DeliversCompanyEvents(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	hub := services.NewQuoteWatchHub(app)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")

	var events []services.QuoteEvent
	cancel := hub.Subscribe(company.Id, func(ev services.QuoteEvent) {
		events = append(events, ev)
	})
	defer cancel()

	quote := testhelpers.CreateTestQuote(t, app, company.Id, "Watched")

	quote.Set("title", "Watched (edited)")
	if err := app.Save(quote); err != nil {
		t.Fatalf("failed to update quote: %v", err)
	}
	if err := app.Delete(quote); err != nil {
		t.Fatalf("failed to delete quote: %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("got %d events, want 3: %+v", len(events), events)
	}
	wantActions := []string{"create", "update", "delete"}
	for i, want := range wantActions {
		if events[i].Action != want {
			t.Errorf("event %d action = %q, want %q", i, events[i].Action, want)
		}
		if events[i].Record.GetString("company") != company.Id {
			t.Errorf("event %d carried record for company %q", i, events[i].Record.GetString("company"))
		}
	}
}

func TestQuoteWatchHub_FiltersOtherCompanies(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	hub := services.NewQuoteWatchHub(app)
	mine := testhelpers.CreateTestCompany(t, app, "Mine")
	theirs := testhelpers.CreateTestCompany(t, app, "Theirs")

	var events []services.QuoteEvent
	cancel := hub.Subscribe(mine.Id, func(ev services.QuoteEvent) {
		events = append(events, ev)
	})
	defer cancel()

	testhelpers.CreateTestQuote(t, app, theirs.Id, "Not mine")

	if len(events) != 0 {
		t.Errorf("received %d events for another company's quote", len(events))
	}
}

func TestQuoteWatchHub_CancelStopsDelivery(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	hub := services.NewQuoteWatchHub(app)
	company := testhelpers.CreateTestCompany(t, app, "Staircraft")

	var events []services.QuoteEvent
	cancel := hub.Subscribe(company.Id, func(ev services.QuoteEvent) {
		events = append(events, ev)
	})

	testhelpers.CreateTestQuote(t, app, company.Id, "Before cancel")
	if len(events) != 1 {
		t.Fatalf("got %d events before cancel, want 1", len(events))
	}

	cancel()
	if hub.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount = %d after cancel, want 0", hub.SubscriberCount())
	}

	testhelpers.CreateTestQuote(t, app, company.Id, "After cancel")
	if len(events) != 1 {
		t.Errorf("got %d events after cancel, want no new deliveries", len(events))
	}
}

func TestQuoteWatchHub_CancelIsIdempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	hub := services.NewQuoteWatchHub(app)

	cancel := hub.Subscribe("company", func(services.QuoteEvent) {})
	other := hub.Subscribe("company", func(services.QuoteEvent) {})

	cancel()
	cancel()

	if hub.SubscriberCount() != 1 {
		t.Errorf("SubscriberCount = %d, want 1 (double cancel must not free another slot)", hub.SubscriberCount())
	}
	other()
}
