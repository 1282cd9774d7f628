package business

// InvoiceLineItem is a single billable line supplied per calculation call.
// It is never persisted by this service.
type InvoiceLineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`   // unit price, non-negative
	Quantity    int     `json:"quantity"` // treated as 1 when zero
	TaxCode     string  `json:"tax_code,omitempty"`
}

// LineTotal returns amount multiplied by the effective quantity.
// A zero quantity counts as a single unit.
func (i InvoiceLineItem) LineTotal() float64 {
	qty := i.Quantity
	if qty == 0 {
		qty = 1
	}
	return i.Amount * float64(qty)
}
