package params

import (
	"github.com/invoxa/invoxa-api/types/business"
)

// TaxCalculationParams contains parameters for a tax calculation call.
// BuyerJurisdiction may carry a sub-region suffix for sales-tax countries
// (e.g. "US-CA"). VAT numbers are optional and are only inspected for the
// intra-community prefix convention; callers are responsible for validating
// them with the compliance endpoint before trusting them.
type TaxCalculationParams struct {
	Items              []business.InvoiceLineItem
	SellerJurisdiction string
	BuyerJurisdiction  string
	SellerVATNumber    *string
	BuyerVATNumber     *string
}
