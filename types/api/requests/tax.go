package requests

// InvoiceItem is one billable line in a tax calculation request.
type InvoiceItem struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"omitempty,min=1"`
	TaxCode     string  `json:"tax_code,omitempty"`
}

// CalculateTaxRequest is the payload for POST /api/v1/tax/calculations.
// BuyerCountry accepts a plain country code or a country plus sub-region
// ("US-CA") for sales-tax jurisdictions.
type CalculateTaxRequest struct {
	Items           []InvoiceItem `json:"items" binding:"required,min=1,dive"`
	SellerCountry   string        `json:"seller_country" binding:"required,min=2,max=6"`
	BuyerCountry    string        `json:"buyer_country" binding:"required,min=2,max=6"`
	SellerVATNumber *string       `json:"seller_vat_number,omitempty"`
	BuyerVATNumber  *string       `json:"buyer_vat_number,omitempty"`
}
