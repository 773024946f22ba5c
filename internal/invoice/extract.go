package invoice

import "regexp"

// ws matches any run of whitespace, including Unicode spaces such as U+00A0
// that PDF text extraction often emits between a label and its value.
// Patterns are searched across the whole text. `.` stops at a newline while
// ws does not, so a label and its value may sit on different lines only
// where the pattern uses ws.
const ws = `[\s\p{Z}]*`

var (
	billingPeriodPattern     = regexp.MustCompile(`Periodo de facturación (\d{2}/\d{2}/\d{4} - \d{2}/\d{2}/\d{4})`)
	invoiceNumberPattern     = regexp.MustCompile(`Número de factura (\d+)`)
	issueDatePattern         = regexp.MustCompile(`Fecha de emisión de factura (.+)`)
	chargeDatePattern        = regexp.MustCompile(`Fecha prevista de cargo (.+)`)
	realReadingPattern       = regexp.MustCompile(`Factura con lectura real`)
	accountHolderPattern     = regexp.MustCompile(`Titular (.+)`)
	holderTaxIDPattern       = regexp.MustCompile(`CIF titular (\w+)`)
	contractReferencePattern = regexp.MustCompile(`Referencia contrato suministro (\d+)`)
	totalAmountPattern       = regexp.MustCompile(`TOTAL IMPORTE FACTURA: ([\d,\.]+ €)`)
	supplyAddressPattern     = regexp.MustCompile(`Dirección de suministro` + ws + `:` + ws + `(.+)`)

	energyPattern     = regexp.MustCompile(`ENERGÍA` + ws + `([\d,\.]+ €)`)
	servicesPattern   = regexp.MustCompile(`SERVICIOS Y OTROS CONCEPTOS` + ws + `([\d,\.]+ €)`)
	totalToPayPattern = regexp.MustCompile(`TOTAL A PAGAR` + ws + `([\d,\.]+ €)`)
)

// ExtractInvoiceData pulls the invoice fields out of the raw PDF text.
// Fields whose pattern does not match are left nil; extraction never fails.
func ExtractInvoiceData(text string) *Record {
	return &Record{
		BillingPeriod:     extractWithPattern(billingPeriodPattern, text),
		InvoiceNumber:     extractWithPattern(invoiceNumberPattern, text),
		IssueDate:         extractWithPattern(issueDatePattern, text),
		ChargeDate:        extractWithPattern(chargeDatePattern, text),
		RealReading:       extractFlag(realReadingPattern, text),
		AccountHolder:     extractWithPattern(accountHolderPattern, text),
		HolderTaxID:       extractWithPattern(holderTaxIDPattern, text),
		ContractReference: extractWithPattern(contractReferencePattern, text),
		TotalAmount:       extractWithPattern(totalAmountPattern, text),
		SupplyAddress:     extractWithPattern(supplyAddressPattern, text),
		Consumption:       extractConsumption(text),
	}
}

// extractConsumption reads the energy, services and total lines of the summary block
func extractConsumption(text string) ConsumptionSummary {
	return ConsumptionSummary{
		Energy:     extractWithPattern(energyPattern, text),
		Services:   extractWithPattern(servicesPattern, text),
		TotalToPay: extractWithPattern(totalToPayPattern, text),
	}
}

// extractWithPattern returns the first capture group of the first match, or nil
func extractWithPattern(re *regexp.Regexp, text string) *string {
	match := re.FindStringSubmatch(text)
	if len(match) < 2 {
		return nil
	}
	v := match[1]
	return &v
}

func extractFlag(re *regexp.Regexp, text string) bool {
	return re.MatchString(text)
}
