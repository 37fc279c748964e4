package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// HandleQuotePDF renders a saved quote as a downloadable PDF.
func HandleQuotePDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := CompanyID(e.Request)
		quoteID := e.Request.PathValue("id")

		quote, err := services.GetQuote(app, companyID, quoteID)
		if err != nil {
			if errors.Is(err, services.ErrQuoteNotFound) {
				return e.String(http.StatusNotFound, "Quote not found")
			}
			log.Printf("quote_pdf: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		data, err := services.BuildQuotePDFData(app, quote)
		if err != nil {
			log.Printf("quote_pdf: build data: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		pdf, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_pdf: generate: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		fileName := fmt.Sprintf("quote-%s.pdf", quote.Id)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		_, err = e.Response.Write(pdf)
		return err
	}
}
