package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// DashboardMetrics is the per-company summary block on the dashboard.
type DashboardMetrics struct {
	QuoteCount         int     `json:"quote_count"`
	QuoteValue         float64 `json:"quote_value"`
	OpenJobs           int     `json:"open_jobs"`
	UnpaidInvoiceValue float64 `json:"unpaid_invoice_value"`
	ContactCount       int     `json:"contact_count"`
}

// LoadDashboardMetrics aggregates the company's quotes, jobs, invoices and
// contacts into the dashboard figures. Read-only.
func LoadDashboardMetrics(app *pocketbase.PocketBase, companyID string) (DashboardMetrics, error) {
	var m DashboardMetrics
	if companyID == "" {
		return m, fmt.Errorf("dashboard metrics: company id is required")
	}

	quotes, err := app.FindRecordsByFilter("quotes",
		"company = {:company}", "", 0, 0, map[string]any{"company": companyID})
	if err != nil {
		return m, fmt.Errorf("dashboard metrics: quotes: %w", err)
	}
	m.QuoteCount = len(quotes)
	for _, q := range quotes {
		m.QuoteValue += q.GetFloat("total")
	}

	jobs, err := app.FindRecordsByFilter("jobs",
		"company = {:company} && status != 'done'", "", 0, 0, map[string]any{"company": companyID})
	if err != nil {
		return m, fmt.Errorf("dashboard metrics: jobs: %w", err)
	}
	m.OpenJobs = len(jobs)

	invoices, err := app.FindRecordsByFilter("invoices",
		"company = {:company} && status != 'paid'", "", 0, 0, map[string]any{"company": companyID})
	if err != nil {
		return m, fmt.Errorf("dashboard metrics: invoices: %w", err)
	}
	for _, inv := range invoices {
		m.UnpaidInvoiceValue += inv.GetFloat("amount") + inv.GetFloat("gst")
	}

	contacts, err := app.FindRecordsByFilter("contacts",
		"company = {:company}", "", 0, 0, map[string]any{"company": companyID})
	if err != nil {
		return m, fmt.Errorf("dashboard metrics: contacts: %w", err)
	}
	m.ContactCount = len(contacts)

	return m, nil
}
