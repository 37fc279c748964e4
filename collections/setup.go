// Package collections programmatically creates and seeds the application's
// PocketBase collections.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradeworks/services"
)

// Setup ensures every application collection exists and that the users
// auth collection carries the company tenant key. Safe to run on every
// startup.
func Setup(app *pocketbase.PocketBase) {
	companies := ensureCollection(app, "companies", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "abn", Required: false})
		c.Fields.Add(&core.EmailField{Name: "contact_email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "plan",
			Required:  false,
			Values:    []string{"starter", "standard", "pro"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureUserCompanyField(app, companies)

	ensureCollection(app, "pricing_tables", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "product_type",
			Required:  true,
			Values:    services.OptionValues(services.ProductTypeOptions),
			MaxSelect: 1,
		})
		// identifier -> unit cost; signed, negatives are deductions
		c.Fields.Add(&core.JSONField{Name: "prices", MaxSize: 51200})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "product_type",
			Required:  true,
			Values:    services.OptionValues(services.ProductTypeOptions),
			MaxSelect: 1,
		})
		// raw quantity strings keyed by catalog identifier
		c.Fields.Add(&core.JSONField{Name: "quantities", MaxSize: 51200})
		c.Fields.Add(&core.TextField{Name: "extra_desc", Required: false})
		c.Fields.Add(&core.NumberField{Name: "extra_qty", Required: false})
		c.Fields.Add(&core.NumberField{Name: "extra_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "tax_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total", Required: false})
		// created is stamped once and carried across every edit
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "jobs", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "client", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.OptionValues(services.JobStatusOptions),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "quote",
			Required:     false,
			CollectionId: quotes.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.DateField{Name: "scheduled_for", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "invoices", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "number", Required: true})
		c.Fields.Add(&core.TextField{Name: "client", Required: false})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "gst", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.OptionValues(services.InvoiceStatusOptions),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "quote",
			Required:     false,
			CollectionId: quotes.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.DateField{Name: "issued_on", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "contacts", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "staff_documents", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "staff_name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "doc_type",
			Required:  true,
			Values:    services.OptionValues(services.StaffDocTypeOptions),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.FileField{Name: "file", MaxSelect: 1, MaxSize: 10485760})
		c.Fields.Add(&core.DateField{Name: "expires_on", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "leads", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email", Required: true})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "message", Required: false, Max: 5000})
		c.Fields.Add(&core.SelectField{
			Name:      "source",
			Required:  false,
			Values:    services.OptionValues(services.LeadSourceOptions),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"new", "contacted", "converted", "closed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureUserCompanyField adds the company relation to the built-in users
// auth collection when it is not there yet. This field is the tenant key
// every request is scoped by.
func ensureUserCompanyField(app *pocketbase.PocketBase, companies *core.Collection) {
	users, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		log.Printf("collections: users collection not found: %v", err)
		return
	}
	if users.Fields.GetByName("company") != nil {
		return
	}
	users.Fields.Add(&core.RelationField{
		Name:         "company",
		Required:     false,
		CollectionId: companies.Id,
		MaxSelect:    1,
	})
	if err := app.Save(users); err != nil {
		log.Fatalf("Failed to add company field to users: %v", err)
	}
}

// ensureCollection checks if a collection already exists by name. If it
// does, the existing collection is returned. Otherwise a new base
// collection is created, the addFields callback populates its fields, and
// the collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
