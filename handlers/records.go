package handlers

import (
	"errors"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// errRecordNotFound covers both missing records and records owned by a
// different company; the two are indistinguishable to callers.
var errRecordNotFound = errors.New("record not found")

// findCompanyRecord fetches a record by id and verifies it belongs to the
// company before returning it.
func findCompanyRecord(app *pocketbase.PocketBase, collection, companyID, id string) (*core.Record, error) {
	record, err := app.FindRecordById(collection, id)
	if err != nil {
		return nil, errRecordNotFound
	}
	if record.GetString("company") != companyID {
		return nil, errRecordNotFound
	}
	return record, nil
}

// listCompanyRecords fetches all of a company's records from a collection,
// newest first.
func listCompanyRecords(app *pocketbase.PocketBase, collection, companyID string) ([]*core.Record, error) {
	return app.FindRecordsByFilter(collection,
		"company = {:company}", "-created", 0, 0,
		map[string]any{"company": companyID},
	)
}
