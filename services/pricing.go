package services

import (
	"strconv"
	"strings"
)

// DefaultTaxRate is the GST fraction applied to the subtotal unless the
// quote carries its own rate.
const DefaultTaxRate = 0.10

// ExtraCost is the single ad hoc line on a quote that is not tied to the
// catalog. It always contributes to the subtotal, configured or not.
type ExtraCost struct {
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
}

// QuoteTotals holds the derived figures for a quote. They are recomputed on
// every read and never stored apart from the materialized total snapshot on
// a saved record.
type QuoteTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ParseQuantity converts a raw quantity field into its numeric value.
// Empty or unparsable input counts as zero; the raw string itself is kept
// on the draft so the edit field re-renders exactly what was typed.
func ParseQuantity(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return v
}

// ComputeQuoteTotals runs the full quote calculation. It is pure: the same
// inputs always produce the same totals.
//
// Only identifiers present as keys of the pricing table contribute; a
// quantity entered against an item the table does not price is ignored,
// matching the display filter that hides the item. The extra cost line is
// added unconditionally. Negative unit costs are deductions and flow
// through unclamped. No rounding happens here; cents rounding is a display
// concern (see FormatAUD).
func ComputeQuoteTotals(sections []CatalogSection, table PricingTable, quantities map[string]string, extra ExtraCost, taxRate float64) QuoteTotals {
	var subtotal float64
	for _, sec := range sections {
		for _, item := range sec.Items {
			cost, ok := table[item.ID]
			if !ok {
				continue
			}
			subtotal += ParseQuantity(quantities[item.ID]) * cost
		}
	}

	subtotal += extra.Qty * extra.UnitPrice

	tax := subtotal * taxRate
	return QuoteTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
