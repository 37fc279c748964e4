package services

// Option is a value/label pair for a closed dropdown.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProductTypeOptions enumerates the timber stock a quote can be priced
// against. Pricing tables are keyed by these values; anything else is
// treated as "no pricing configured", not an error.
var ProductTypeOptions = []Option{
	{Value: "pine", Label: "Pine"},
	{Value: "vicash", Label: "Victorian Ash"},
	{Value: "tasoak", Label: "Tasmanian Oak"},
	{Value: "spottedgum", Label: "Spotted Gum"},
	{Value: "blackbutt", Label: "Blackbutt"},
	{Value: "mdf", Label: "MDF (paint grade)"},
}

// JobStatusOptions enumerates the job workflow states.
var JobStatusOptions = []Option{
	{Value: "scheduled", Label: "Scheduled"},
	{Value: "in_progress", Label: "In progress"},
	{Value: "done", Label: "Done"},
}

// InvoiceStatusOptions enumerates the invoice workflow states.
var InvoiceStatusOptions = []Option{
	{Value: "draft", Label: "Draft"},
	{Value: "sent", Label: "Sent"},
	{Value: "paid", Label: "Paid"},
}

// StaffDocTypeOptions enumerates the HR document categories.
var StaffDocTypeOptions = []Option{
	{Value: "contract", Label: "Employment contract"},
	{Value: "license", Label: "Trade license"},
	{Value: "insurance", Label: "Insurance certificate"},
	{Value: "induction", Label: "Site induction"},
}

// LeadSourceOptions enumerates where a marketing lead came from.
var LeadSourceOptions = []Option{
	{Value: "website", Label: "Website form"},
	{Value: "referral", Label: "Referral"},
	{Value: "phone", Label: "Phone enquiry"},
}

// IsProductType reports whether v is one of the known product types.
func IsProductType(v string) bool {
	for _, opt := range ProductTypeOptions {
		if opt.Value == v {
			return true
		}
	}
	return false
}

// ProductTypeLabel returns the display label for a product type value, or
// the value itself when it is not recognized.
func ProductTypeLabel(v string) string {
	for _, opt := range ProductTypeOptions {
		if opt.Value == v {
			return opt.Label
		}
	}
	return v
}

// OptionValues extracts the raw values from an option list, for use as
// select field choices in the collection schema.
func OptionValues(opts []Option) []string {
	values := make([]string, len(opts))
	for i, opt := range opts {
		values[i] = opt.Value
	}
	return values
}
