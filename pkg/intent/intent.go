// Package intent classifies free-text generation requests. A request maps to
// exactly one generation intent from a closed set, plus a requested record
// count extracted from the text and clamped to the configured bounds.
//
// Classification is an explicit ordered list of (keyword set, intent) rules
// evaluated in fixed precedence order; the first match wins. A supplied
// pattern profile always takes precedence over the text.
package intent

// Type identifies a generation strategy.
type Type string

const (
	// TypeCustomer generates CRM-shaped customer records.
	TypeCustomer Type = "customer"
	// TypeEquipmentTracking generates platform/item completion tracking rows.
	TypeEquipmentTracking Type = "equipment_tracking"
	// TypeSales generates sales transaction rows.
	TypeSales Type = "sales"
	// TypeEmployeeRecords generates HR employee rows.
	TypeEmployeeRecords Type = "employee_records"
	// TypeFinancialTransactions generates payment/transaction rows.
	TypeFinancialTransactions Type = "financial_transactions"
	// TypeProductCatalog generates product inventory rows.
	TypeProductCatalog Type = "product_catalog"
	// TypeTimeSeries generates one row per day with a trend and seasonality.
	TypeTimeSeries Type = "time_series"
	// TypeCustomSchema generates rows from a caller-supplied field mapping.
	TypeCustomSchema Type = "custom_schema"
	// TypeProfileConditioned synthesizes rows from a learned pattern profile.
	TypeProfileConditioned Type = "profile_conditioned"
)

// Intent is the resolved generation strategy for one request.
type Intent struct {
	// Type selects the generator or the profile-conditioned synthesizer.
	Type Type `json:"type"`
	// Count is the requested record count after clamping.
	Count int `json:"count"`
}
