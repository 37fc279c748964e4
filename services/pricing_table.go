package services

import (
	"fmt"
	"log"
	"sync"

	"github.com/pocketbase/pocketbase"
)

// PricingTable maps catalog identifiers to unit costs for one
// (company, product type) pair. Costs are signed: negative entries are
// deductions. An identifier missing from the table means the item does not
// apply to this product type, not that it costs zero.
type PricingTable map[string]float64

// Configured reports whether any pricing exists. An empty table is the
// "no pricing configured" display state, never an error.
func (t PricingTable) Configured() bool {
	return len(t) > 0
}

// LoadPricingTable fetches the pricing table for a company and product
// type. Unknown product types and lookup misses both yield an empty table
// with no error. Keys that are not catalog identifiers are dropped at this
// boundary so the rest of the program only ever sees the closed
// enumeration.
func LoadPricingTable(app *pocketbase.PocketBase, companyID, productType string) (PricingTable, error) {
	if companyID == "" {
		return nil, fmt.Errorf("load pricing table: company id is required")
	}
	if !IsProductType(productType) {
		return PricingTable{}, nil
	}

	records, err := app.FindRecordsByFilter("pricing_tables",
		"company = {:company} && product_type = {:type}", "", 1, 0,
		map[string]any{"company": companyID, "type": productType},
	)
	if err != nil {
		return nil, fmt.Errorf("load pricing table: %w", err)
	}
	if len(records) == 0 {
		return PricingTable{}, nil
	}

	raw := map[string]float64{}
	if err := records[0].UnmarshalJSONField("prices", &raw); err != nil {
		return nil, fmt.Errorf("load pricing table: decode prices: %w", err)
	}

	table := make(PricingTable, len(raw))
	for id, cost := range raw {
		if !IsCatalogItem(id) {
			log.Printf("pricing_table: dropping unknown identifier %q for company %s type %s", id, companyID, productType)
			continue
		}
		table[id] = cost
	}
	return table, nil
}

// PricingSelection guards against a slow pricing load landing after the
// user has already switched company or product type. Each Begin supersedes
// every earlier ticket; Apply installs a result only when its ticket is
// still the latest, so the displayed table always belongs to the current
// selection regardless of response ordering.
type PricingSelection struct {
	mu          sync.Mutex
	seq         uint64
	companyID   string
	productType string
	table       PricingTable
}

// PricingTicket tags one load request with the selection it was issued for.
type PricingTicket struct {
	seq uint64
}

// Begin records a new (company, product type) selection and returns the
// ticket the eventual load result must present to Apply.
func (s *PricingSelection) Begin(companyID, productType string) PricingTicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.companyID = companyID
	s.productType = productType
	return PricingTicket{seq: s.seq}
}

// Apply installs a loaded table if the ticket still matches the latest
// Begin. It reports whether the result was applied; a false return means
// the response was stale and has been discarded.
func (s *PricingSelection) Apply(t PricingTicket, table PricingTable) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.seq != s.seq {
		return false
	}
	s.table = table
	return true
}

// Table returns the currently applied pricing table. It is nil until the
// first successful Apply.
func (s *PricingSelection) Table() PricingTable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// Current returns the selection of the most recent Begin.
func (s *PricingSelection) Current() (companyID, productType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.companyID, s.productType
}
