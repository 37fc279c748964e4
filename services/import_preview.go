package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportField describes one expected column of a migration upload.
type ImportField struct {
	Key      string
	Label    string
	Required bool
}

// importFieldSets maps an import kind to the columns a legacy export is
// expected to carry. Used by the admin console to scope a migration before
// anything is written.
var importFieldSets = map[string][]ImportField{
	"contacts": {
		{Key: "name", Label: "Name", Required: true},
		{Key: "email", Label: "Email", Required: false},
		{Key: "phone", Label: "Phone", Required: false},
		{Key: "address", Label: "Address", Required: false},
		{Key: "notes", Label: "Notes", Required: false},
	},
	"jobs": {
		{Key: "title", Label: "Job Title", Required: true},
		{Key: "client", Label: "Client", Required: true},
		{Key: "status", Label: "Status", Required: false},
		{Key: "scheduled_for", Label: "Scheduled For", Required: false},
	},
	"invoices": {
		{Key: "number", Label: "Invoice Number", Required: true},
		{Key: "client", Label: "Client", Required: true},
		{Key: "amount", Label: "Amount", Required: true},
		{Key: "issued_on", Label: "Issued On", Required: false},
	},
}

// ImportRowError is a single field-level problem on one uploaded row.
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportPreview summarizes an uploaded legacy file without persisting
// anything.
type ImportPreview struct {
	Kind         string              `json:"kind"`
	FileName     string              `json:"file_name"`
	TotalRows    int                 `json:"total_rows"`
	ValidRows    int                 `json:"valid_rows"`
	ErrorRows    int                 `json:"error_rows"`
	Unrecognized []string            `json:"unrecognized_columns"`
	Errors       []ImportRowError    `json:"errors"`
	Sample       []map[string]string `json:"sample"`
}

const importSampleSize = 5

// PreviewImportFile parses a .csv or .xlsx legacy export and reports how it
// would map onto the given import kind. Pure read: no records are created.
func PreviewImportFile(file io.Reader, fileName, kind string) (*ImportPreview, error) {
	fields, ok := importFieldSets[kind]
	if !ok {
		return nil, fmt.Errorf("unknown import kind %q", kind)
	}

	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	columnKeys, unrecognized := mapHeadersToFields(headers, fields)

	preview := &ImportPreview{
		Kind:         kind,
		FileName:     fileName,
		TotalRows:    len(dataRows),
		Unrecognized: unrecognized,
	}

	keyToLabel := make(map[string]string, len(fields))
	for _, f := range fields {
		keyToLabel[f.Key] = f.Label
	}

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed plus header row
		rowData := make(map[string]string)

		for colIdx, key := range columnKeys {
			if key == "" {
				continue
			}
			value := ""
			if colIdx < len(row) {
				value = strings.TrimSpace(row[colIdx])
			}
			rowData[key] = value
		}

		for _, f := range fields {
			if f.Required && rowData[f.Key] == "" {
				preview.Errors = append(preview.Errors, ImportRowError{
					Row:     rowNum,
					Field:   f.Label,
					Message: fmt.Sprintf("%s is required", f.Label),
				})
			}
		}

		if len(preview.Sample) < importSampleSize {
			preview.Sample = append(preview.Sample, rowData)
		}
	}

	errorRowSet := make(map[int]bool)
	for _, e := range preview.Errors {
		errorRowSet[e.Row] = true
	}
	preview.ErrorRows = len(errorRowSet)
	preview.ValidRows = preview.TotalRows - preview.ErrorRows

	return preview, nil
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the
// first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// mapHeadersToFields maps uploaded column headers to import field keys.
// Returns an ordered list of field keys (one per column, empty for
// unmatched) plus the unrecognized column names.
func mapHeadersToFields(headers []string, fields []ImportField) ([]string, []string) {
	labelToKey := make(map[string]string, len(fields))
	for _, f := range fields {
		labelToKey[strings.ToLower(strings.TrimSpace(f.Label))] = f.Key
	}

	mapped := make([]string, len(headers))
	var unrecognized []string

	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		if key, ok := labelToKey[norm]; ok {
			mapped[i] = key
		} else {
			mapped[i] = ""
			unrecognized = append(unrecognized, h)
		}
	}
	return mapped, unrecognized
}
