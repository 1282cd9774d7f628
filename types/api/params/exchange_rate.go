package params

// ExchangeRateParams identifies a currency pair for a rate lookup.
// Base and Target are ISO-4217 codes.
type ExchangeRateParams struct {
	Base   string
	Target string
}
