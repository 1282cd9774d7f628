package interfaces

import (
	"context"

	"github.com/invoxa/invoxa-api/types/api/params"
	"github.com/invoxa/invoxa-api/types/api/responses"
	"github.com/invoxa/invoxa-api/types/business"
)

// TaxService computes jurisdiction-aware tax breakdowns.
type TaxService interface {
	CalculateTaxes(ctx context.Context, p params.TaxCalculationParams) (*responses.TaxCalculationResult, error)
}

// ExchangeRateService resolves currency-pair rates with caching and a
// static fallback.
type ExchangeRateService interface {
	GetExchangeRate(ctx context.Context, p params.ExchangeRateParams) (*responses.ExchangeRateResult, error)
}

// ClauseService composes jurisdiction-specific legal boilerplate.
// Implementations never fail: an unknown jurisdiction falls back to a
// default clause, and an unknown clause type yields empty text.
type ClauseService interface {
	GenerateClause(clauseType business.ClauseType, jurisdiction business.Jurisdiction, variables map[string]string) string
}

// ComplianceService answers registration and identifier-format questions.
type ComplianceService interface {
	ValidateVATFormat(vatNumber string) bool
	RequiresGSTRegistration(country string, annualRevenue float64) bool
	GSTThreshold(country string) (float64, bool)
	BusinessIDRequirements(country string) []string
}

// RateSource is the external exchange-rate feed consumed by the
// ExchangeRateService. It returns rates for the requested symbols relative
// to base.
type RateSource interface {
	FetchRates(ctx context.Context, base string, symbols []string) (map[string]float64, error)
}

// VATValidator checks a VAT number against the upstream registry and
// returns the registered company details when valid.
type VATValidator interface {
	Validate(ctx context.Context, countryCode, vatNumber string) (*responses.VATValidationResult, error)
}
