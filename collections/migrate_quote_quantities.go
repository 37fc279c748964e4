package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/spf13/cast"

	"tradeworks/services"
)

// MigrateQuoteQuantityStrings rewrites quote quantity maps that were stored
// as JSON numbers into the raw-string form the editor now round-trips.
// Earlier builds persisted parsed numbers, which collapsed "" and "0" into
// the same value; the current schema keeps whatever the user typed.
func MigrateQuoteQuantityStrings(app *pocketbase.PocketBase) error {
	quotes, err := app.FindAllRecords("quotes")
	if err != nil {
		return fmt.Errorf("quantity migration: %w", err)
	}

	migrated := 0
	for _, quote := range quotes {
		raw := map[string]any{}
		if err := quote.UnmarshalJSONField("quantities", &raw); err != nil {
			log.Printf("migrate_quote_quantities: skipping %s: %v", quote.Id, err)
			continue
		}

		changed := false
		quantities := make(map[string]string, len(raw))
		for id, v := range raw {
			if !services.IsCatalogItem(id) {
				changed = true
				continue
			}
			if s, isString := v.(string); isString {
				quantities[id] = s
				continue
			}
			quantities[id] = cast.ToString(v)
			changed = true
		}
		if !changed {
			continue
		}

		quote.Set("quantities", quantities)
		if err := app.Save(quote); err != nil {
			return fmt.Errorf("quantity migration: save %s: %w", quote.Id, err)
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("Migrated quantity maps on %d quote(s)", migrated)
	}
	return nil
}
