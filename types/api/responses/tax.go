package responses

// TaxDetails is the regime-discriminated breakdown attached to a
// calculation result. Exactly one of the rate/amount pairs is populated:
// VATRate/VATAmount, TaxRate/TaxAmount (sales tax) or GSTRate/GSTAmount.
// Currency and ExchangeRate are informational; the amounts themselves stay
// in the taxable amount's native unit.
type TaxDetails struct {
	VATRate       *float64 `json:"vatRate,omitempty"`
	VATAmount     *float64 `json:"vatAmount,omitempty"`
	ReverseCharge *bool    `json:"reverseCharge,omitempty"`
	Notes         string   `json:"notes,omitempty"`

	TaxRate   *float64 `json:"taxRate,omitempty"`
	TaxAmount *float64 `json:"taxAmount,omitempty"`

	GSTRate   *float64 `json:"gstRate,omitempty"`
	GSTAmount *float64 `json:"gstAmount,omitempty"`

	TaxableAmount float64 `json:"taxableAmount"`

	Currency     string  `json:"currency"`
	ExchangeRate float64 `json:"exchangeRate"`
	// RateSource tags where ExchangeRate came from ("live", "cache",
	// "fallback") so consumers can flag breakdowns computed from the
	// static fallback table.
	RateSource string `json:"rateSource"`
}

// EffectiveTaxAmount returns whichever regime-specific amount is present.
func (d TaxDetails) EffectiveTaxAmount() float64 {
	switch {
	case d.VATAmount != nil:
		return *d.VATAmount
	case d.TaxAmount != nil:
		return *d.TaxAmount
	case d.GSTAmount != nil:
		return *d.GSTAmount
	}
	return 0
}

// TaxCalculationResult is the engine output: the breakdown plus the
// tax-inclusive total.
type TaxCalculationResult struct {
	Taxes TaxDetails `json:"taxes"`
	Total float64    `json:"total"`
}
