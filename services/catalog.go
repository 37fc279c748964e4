// Package services provides the quote catalog, pricing and persistence
// logic shared by the handlers.
package services

import "fmt"

// CatalogItem is a single priceable line item with a stable identifier.
type CatalogItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CatalogSection groups catalog items under a display heading. The grouping
// only affects ordering on screen, never pricing.
type CatalogSection struct {
	Key   string        `json:"key"`
	Label string        `json:"label"`
	Items []CatalogItem `json:"items"`
}

// QuoteCatalog is the fixed, ordered list of line items a quote can price.
// Identifiers are permanent: saved quotes and pricing tables reference them
// by key, so renaming one is a data migration, not an edit here.
var QuoteCatalog = []CatalogSection{
	{
		Key:   "stair",
		Label: "Stair",
		Items: []CatalogItem{
			{ID: "supplyonly", Label: "Supply only"},
			{ID: "supplyinstall", Label: "Supply and install"},
			{ID: "winders", Label: "Winders (per set)"},
			{ID: "landing", Label: "Landing"},
			{ID: "bullnose", Label: "Bullnose step"},
			{ID: "cutstring", Label: "Cut stringer"},
			{ID: "openrise", Label: "Open rise conversion"},
			{ID: "carpetrebate", Label: "Carpet rebate"},
		},
	},
	{
		Key:   "balustrade",
		Label: "Balustrade",
		Items: []CatalogItem{
			{ID: "post", Label: "Post"},
			{ID: "newel", Label: "Newel post"},
			{ID: "handrail", Label: "Handrail (per metre)"},
			{ID: "wallrail", Label: "Wall rail (per metre)"},
			{ID: "baluster", Label: "Baluster"},
			{ID: "capping", Label: "Capping (per metre)"},
		},
	},
	{
		Key:   "extras",
		Label: "Extras",
		Items: []CatalogItem{
			{ID: "delivery", Label: "Delivery"},
			{ID: "sitemeasure", Label: "Site measure"},
			{ID: "removal", Label: "Old stair removal"},
			{ID: "extracoat", Label: "Extra lacquer coat"},
		},
	},
}

// ValidateCatalog checks that every item across all sections has a unique,
// non-empty identifier. It runs once at startup; a failure is a programming
// error in the table above.
func ValidateCatalog(sections []CatalogSection) error {
	seen := make(map[string]string)
	for _, sec := range sections {
		if sec.Key == "" {
			return fmt.Errorf("catalog section %q has no key", sec.Label)
		}
		for _, item := range sec.Items {
			if item.ID == "" {
				return fmt.Errorf("catalog item %q in section %q has no identifier", item.Label, sec.Key)
			}
			if prev, ok := seen[item.ID]; ok {
				return fmt.Errorf("catalog identifier %q appears in both %q and %q", item.ID, prev, sec.Key)
			}
			seen[item.ID] = sec.Key
		}
	}
	return nil
}

// IsCatalogItem reports whether id is a known catalog identifier.
func IsCatalogItem(id string) bool {
	for _, sec := range QuoteCatalog {
		for _, item := range sec.Items {
			if item.ID == id {
				return true
			}
		}
	}
	return false
}

// VisibleCatalog filters the catalog down to what the current pricing table
// supports: an item is shown only when its identifier is a key of the table.
// Section headings are always kept, even when every item under them is
// filtered out, so an unconfigured section renders as a bare heading.
func VisibleCatalog(sections []CatalogSection, table PricingTable) []CatalogSection {
	out := make([]CatalogSection, 0, len(sections))
	for _, sec := range sections {
		visible := CatalogSection{Key: sec.Key, Label: sec.Label, Items: []CatalogItem{}}
		for _, item := range sec.Items {
			if _, ok := table[item.ID]; ok {
				visible.Items = append(visible.Items, item)
			}
		}
		out = append(out, visible)
	}
	return out
}
