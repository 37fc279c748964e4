package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	mcore "github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// QuotePDFLine is one priced row on the rendered quote.
type QuotePDFLine struct {
	Label    string
	Qty      float64
	UnitCost float64
	Amount   float64
}

// QuotePDFData is everything the PDF layout needs, assembled up front so
// rendering itself touches no storage.
type QuotePDFData struct {
	CompanyName      string
	Title            string
	ProductTypeLabel string
	CreatedOn        string
	Lines            []QuotePDFLine
	ExtraDescription string
	ExtraAmount      float64
	TaxRate          float64
	Totals           QuoteTotals
}

// BuildQuotePDFData loads the pricing table behind a saved quote and
// flattens it into renderable rows. Only items the table prices and the
// user gave a non-zero quantity for appear on the document.
func BuildQuotePDFData(app *pocketbase.PocketBase, quote *core.Record) (*QuotePDFData, error) {
	companyID := quote.GetString("company")
	productType := quote.GetString("product_type")

	companyName := ""
	if company, err := app.FindRecordById("companies", companyID); err == nil {
		companyName = company.GetString("name")
	}

	table, err := LoadPricingTable(app, companyID, productType)
	if err != nil {
		return nil, fmt.Errorf("build quote pdf: %w", err)
	}

	quantities := QuoteQuantities(quote)
	extra := QuoteExtraCost(quote)
	taxRate := quote.GetFloat("tax_rate")
	totals := ComputeQuoteTotals(QuoteCatalog, table, quantities, extra, taxRate)

	data := &QuotePDFData{
		CompanyName:      companyName,
		Title:            quote.GetString("title"),
		ProductTypeLabel: ProductTypeLabel(productType),
		CreatedOn:        quote.GetDateTime("created").Time().Format("02 Jan 2006"),
		ExtraDescription: extra.Description,
		ExtraAmount:      extra.Qty * extra.UnitPrice,
		TaxRate:          taxRate,
		Totals:           totals,
	}

	for _, sec := range QuoteCatalog {
		for _, item := range sec.Items {
			cost, ok := table[item.ID]
			if !ok {
				continue
			}
			qty := ParseQuantity(quantities[item.ID])
			if qty == 0 {
				continue
			}
			data.Lines = append(data.Lines, QuotePDFLine{
				Label:    item.Label,
				Qty:      qty,
				UnitCost: cost,
				Amount:   qty * cost,
			})
		}
	}

	return data, nil
}

// GenerateQuotePDF renders a saved quote as a PDF using maroto/v2 and
// returns the raw bytes.
func GenerateQuotePDF(data *QuotePDFData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteLinesTable(m, data)
	addQuoteTotals(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuoteHeader(m mcore.Maroto, data *QuotePDFData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("QUOTE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
		row.New(8).Add(
			col.New(6).Add(
				text.New(data.Title, props.Text{
					Size:  10,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("%s | %s", data.ProductTypeLabel, data.CreatedOn), props.Text{
					Size:  8,
					Align: align.Right,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
		row.New(3),
	)
}

func addQuoteLinesTable(m mcore.Maroto, data *QuotePDFData) {
	headerStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	headerRight := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Item", headerStyle)),
			col.New(2).Add(text.New("Qty", headerRight)),
			col.New(2).Add(text.New("Unit", headerRight)),
			col.New(2).Add(text.New("Amount", headerRight)),
		),
		row.New(1).Add(col.New(12).Add(line.New())),
	)

	cellStyle := props.Text{Size: 8, Align: align.Left}
	cellRight := props.Text{Size: 8, Align: align.Right}

	for _, l := range data.Lines {
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(text.New(l.Label, cellStyle)),
				col.New(2).Add(text.New(fmt.Sprintf("%g", l.Qty), cellRight)),
				col.New(2).Add(text.New(FormatAUD(l.UnitCost), cellRight)),
				col.New(2).Add(text.New(FormatAUD(l.Amount), cellRight)),
			),
		)
	}

	if data.ExtraDescription != "" || data.ExtraAmount != 0 {
		label := data.ExtraDescription
		if label == "" {
			label = "Extra costs"
		}
		m.AddRows(
			row.New(6).Add(
				col.New(10).Add(text.New(label, cellStyle)),
				col.New(2).Add(text.New(FormatAUD(data.ExtraAmount), cellRight)),
			),
		)
	}
}

func addQuoteTotals(m mcore.Maroto, data *QuotePDFData) {
	labelStyle := props.Text{Size: 9, Align: align.Right}
	valueStyle := props.Text{Size: 9, Align: align.Right}
	totalStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}

	m.AddRows(
		row.New(2),
		row.New(1).Add(col.New(12).Add(line.New())),
		row.New(6).Add(
			col.New(10).Add(text.New("Subtotal", labelStyle)),
			col.New(2).Add(text.New(FormatAUD(data.Totals.Subtotal), valueStyle)),
		),
		row.New(6).Add(
			col.New(10).Add(text.New(fmt.Sprintf("GST (%.0f%%)", data.TaxRate*100), labelStyle)),
			col.New(2).Add(text.New(FormatAUD(data.Totals.Tax), valueStyle)),
		),
		row.New(7).Add(
			col.New(10).Add(text.New("Total", totalStyle)),
			col.New(2).Add(text.New(FormatAUD(data.Totals.Total), totalStyle)),
		),
	)
}
