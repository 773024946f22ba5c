package invoice

// Display labels for the record fields. They double as spreadsheet labels
// and flat report column headers.
const (
	KeyBillingPeriod     = "Billing Period"
	KeyInvoiceNumber     = "Invoice Number"
	KeyIssueDate         = "Issue Date"
	KeyChargeDate        = "Charge Date"
	KeyRealReading       = "Real Reading"
	KeyAccountHolder     = "Account Holder"
	KeyHolderTaxID       = "Holder Tax ID"
	KeyContractReference = "Supply Contract Reference"
	KeyTotalAmount       = "Total Invoice Amount"
	KeySupplyAddress     = "Supply Address"
	KeyConsumption       = "Consumption Summary"

	KeyEnergy     = "Energy"
	KeyServices   = "Services and Other Concepts"
	KeyTotalToPay = "Total to Pay"
)

// Record holds the fields extracted from one invoice.
// A nil pointer means the pattern for that field did not match.
type Record struct {
	BillingPeriod     *string `json:"billing_period"`
	InvoiceNumber     *string `json:"invoice_number"`
	IssueDate         *string `json:"issue_date"`
	ChargeDate        *string `json:"charge_date"`
	RealReading       bool    `json:"real_reading"`
	AccountHolder     *string `json:"account_holder"`
	HolderTaxID       *string `json:"holder_tax_id"`
	ContractReference *string `json:"contract_reference"`
	TotalAmount       *string `json:"total_amount"`
	SupplyAddress     *string `json:"supply_address"`

	Consumption ConsumptionSummary `json:"consumption"`
}

// ConsumptionSummary is the billing summary block of an invoice
type ConsumptionSummary struct {
	Energy     *string `json:"energy"`
	Services   *string `json:"services"`
	TotalToPay *string `json:"total_to_pay"`
}

// FileRecord pairs a source filename with the record extracted from it
type FileRecord struct {
	Filename string
	Record   *Record
}

// Field is one labelled value of a record. Value is nil, a string or a bool.
type Field struct {
	Key   string
	Value any
}

// Fields returns the top-level scalar fields in their fixed order.
// The consumption summary is not included; see ConsumptionSummary.Fields.
func (r *Record) Fields() []Field {
	return []Field{
		{Key: KeyBillingPeriod, Value: value(r.BillingPeriod)},
		{Key: KeyInvoiceNumber, Value: value(r.InvoiceNumber)},
		{Key: KeyIssueDate, Value: value(r.IssueDate)},
		{Key: KeyChargeDate, Value: value(r.ChargeDate)},
		{Key: KeyRealReading, Value: r.RealReading},
		{Key: KeyAccountHolder, Value: value(r.AccountHolder)},
		{Key: KeyHolderTaxID, Value: value(r.HolderTaxID)},
		{Key: KeyContractReference, Value: value(r.ContractReference)},
		{Key: KeyTotalAmount, Value: value(r.TotalAmount)},
		{Key: KeySupplyAddress, Value: value(r.SupplyAddress)},
	}
}

// Fields returns the summary fields in their fixed order
func (c ConsumptionSummary) Fields() []Field {
	return []Field{
		{Key: KeyEnergy, Value: value(c.Energy)},
		{Key: KeyServices, Value: value(c.Services)},
		{Key: KeyTotalToPay, Value: value(c.TotalToPay)},
	}
}

// value unwraps a nullable string so that a missing field becomes an untyped nil
func value(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
