package responses

import "time"

// Rate provenance values for ExchangeRateResult.Source.
const (
	RateSourceLive     = "live"
	RateSourceCache    = "cache"
	RateSourceFallback = "fallback"
)

// ExchangeRateResult is a single resolved currency-pair rate. AsOf is the
// moment the underlying data was produced; for fallback rates it is the
// (old) snapshot date of the static table, making staleness explicit rather
// than implicit.
type ExchangeRateResult struct {
	Base   string    `json:"base"`
	Target string    `json:"target"`
	Rate   float64   `json:"rate"`
	Source string    `json:"source"`
	AsOf   time.Time `json:"as_of"`
}
