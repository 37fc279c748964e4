package services

import (
	"errors"
	"fmt"
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ErrQuoteNotFound covers both a genuinely missing quote and a quote owned
// by another company; callers must not be able to tell the two apart.
var ErrQuoteNotFound = errors.New("quote not found")

// QuoteInput carries the user-edited draft fields of a quote. ID is empty
// for a first save and set when re-saving an existing record.
type QuoteInput struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	ProductType string            `json:"product_type"`
	Quantities  map[string]string `json:"quantities"`
	Extra       ExtraCost         `json:"extra"`
	TaxRate     float64           `json:"tax_rate"`
}

// Validate checks the save-time requirements. A zero TaxRate is allowed
// here because SaveQuote substitutes the default before computing.
func (in QuoteInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.ProductType, validation.Required, validation.By(checkProductType)),
		validation.Field(&in.TaxRate, validation.Min(0.0), validation.Max(1.0)),
	)
}

func checkProductType(value any) error {
	s, _ := value.(string)
	if !IsProductType(s) {
		return errors.New("must be a known product type")
	}
	return nil
}

// SaveQuote creates or overwrites a quote for the given company and
// returns the persisted record.
//
// On update every field is overwritten except the creation timestamp,
// which the schema only stamps on create. Quantity keys outside the
// catalog are dropped before persisting. The materialized total is
// computed against the company's current pricing table for the chosen
// product type. A failed save leaves the store untouched; the caller keeps
// its draft and can retry.
func SaveQuote(app *pocketbase.PocketBase, companyID string, in QuoteInput) (*core.Record, error) {
	if companyID == "" {
		return nil, fmt.Errorf("save quote: company id is required")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.TaxRate == 0 {
		in.TaxRate = DefaultTaxRate
	}

	quantities := make(map[string]string, len(in.Quantities))
	for id, raw := range in.Quantities {
		if !IsCatalogItem(id) {
			log.Printf("quotes: dropping unknown quantity key %q", id)
			continue
		}
		quantities[id] = raw
	}

	table, err := LoadPricingTable(app, companyID, in.ProductType)
	if err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}
	totals := ComputeQuoteTotals(QuoteCatalog, table, quantities, in.Extra, in.TaxRate)

	var record *core.Record
	if in.ID == "" {
		col, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			return nil, fmt.Errorf("save quote: %w", err)
		}
		record = core.NewRecord(col)
		record.Set("company", companyID)
	} else {
		record, err = GetQuote(app, companyID, in.ID)
		if err != nil {
			return nil, err
		}
	}

	record.Set("title", in.Title)
	record.Set("product_type", in.ProductType)
	record.Set("quantities", quantities)
	record.Set("extra_desc", in.Extra.Description)
	record.Set("extra_qty", in.Extra.Qty)
	record.Set("extra_price", in.Extra.UnitPrice)
	record.Set("tax_rate", in.TaxRate)
	record.Set("total", totals.Total)

	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}
	return record, nil
}

// GetQuote fetches a quote by id, scoped to the company. Cross-company
// access reports ErrQuoteNotFound.
func GetQuote(app *pocketbase.PocketBase, companyID, id string) (*core.Record, error) {
	record, err := app.FindRecordById("quotes", id)
	if err != nil {
		return nil, ErrQuoteNotFound
	}
	if record.GetString("company") != companyID {
		log.Printf("quotes: company %s requested quote %s owned by %s", companyID, id, record.GetString("company"))
		return nil, ErrQuoteNotFound
	}
	return record, nil
}

// ListQuotes returns the company's quotes, newest first.
func ListQuotes(app *pocketbase.PocketBase, companyID string) ([]*core.Record, error) {
	records, err := app.FindRecordsByFilter("quotes",
		"company = {:company}", "-created", 0, 0,
		map[string]any{"company": companyID},
	)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return records, nil
}

// DeleteQuote hard-deletes a quote. There is no soft delete or undo.
func DeleteQuote(app *pocketbase.PocketBase, companyID, id string) error {
	record, err := GetQuote(app, companyID, id)
	if err != nil {
		return err
	}
	if err := app.Delete(record); err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

// QuoteQuantities decodes the stored raw quantity strings of a quote
// record. Missing or malformed data yields an empty map.
func QuoteQuantities(record *core.Record) map[string]string {
	quantities := map[string]string{}
	if err := record.UnmarshalJSONField("quantities", &quantities); err != nil {
		log.Printf("quotes: decode quantities for %s: %v", record.Id, err)
		return map[string]string{}
	}
	return quantities
}

// QuoteExtraCost reassembles the ad hoc extra line from a quote record.
func QuoteExtraCost(record *core.Record) ExtraCost {
	return ExtraCost{
		Description: record.GetString("extra_desc"),
		Qty:         record.GetFloat("extra_qty"),
		UnitPrice:   record.GetFloat("extra_price"),
	}
}
