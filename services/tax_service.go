package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/invoxa/invoxa-api/interfaces"
	"github.com/invoxa/invoxa-api/logger"
	"github.com/invoxa/invoxa-api/types/api/params"
	"github.com/invoxa/invoxa-api/types/api/responses"
	"github.com/invoxa/invoxa-api/types/business"
	"go.uber.org/zap"
)

// euVATPrefix marks an intra-community VAT registration on buyer-supplied
// identifiers. The engine only checks this prefix convention; full
// validation belongs to the compliance endpoint and must happen before the
// identifier is trusted.
const euVATPrefix = "EU"

// rateLookupTimeout bounds the informational exchange-rate fetch. The tax
// amount is fully determined before the lookup, so a timeout degrades the
// display rate, never the calculation.
const rateLookupTimeout = 5 * time.Second

// TaxService is the calculation engine. All state is immutable reference
// data injected at construction; calls are safe to run concurrently.
type TaxService struct {
	registry *JurisdictionRegistry
	rates    interfaces.ExchangeRateService
	logger   *zap.Logger
}

// NewTaxService creates a tax engine over the given registry and exchange
// rate adapter.
func NewTaxService(registry *JurisdictionRegistry, rates interfaces.ExchangeRateService) *TaxService {
	return &TaxService{
		registry: registry,
		rates:    rates,
		logger:   logger.Log,
	}
}

// CalculateTaxes resolves the buyer's regime, computes the taxable base and
// regime-specific tax, and returns the breakdown plus tax-inclusive total.
// Failure modes are explicit: UnsupportedJurisdictionError,
// UnsupportedSubregionError and MisconfiguredRegimeError are hard stops for
// invoice issuance.
func (s *TaxService) CalculateTaxes(ctx context.Context, p params.TaxCalculationParams) (*responses.TaxCalculationResult, error) {
	buyerCountry, buyerSubregion := splitJurisdiction(p.BuyerJurisdiction)

	key := ResolveJurisdiction(buyerCountry)
	regime, ok := s.registry.Regime(key)
	if !ok {
		return nil, &UnsupportedJurisdictionError{Code: p.BuyerJurisdiction}
	}

	taxableAmount := 0.0
	for _, item := range p.Items {
		taxableAmount += item.LineTotal()
	}

	var details responses.TaxDetails
	var err error

	switch t := regime.(type) {
	case business.VATRegime:
		details = s.calculateVAT(t, taxableAmount, p.BuyerVATNumber)
	case business.SalesTaxRegime:
		details, err = s.calculateSalesTax(t, taxableAmount, p.BuyerJurisdiction, buyerSubregion)
		if err != nil {
			return nil, err
		}
	case business.GSTRegime:
		details = s.calculateGST(t, taxableAmount)
	default:
		s.logger.Error("tax regime has no applicable kind; registry data is inconsistent",
			zap.String("key", key),
			zap.String("buyer_jurisdiction", p.BuyerJurisdiction))
		return nil, &MisconfiguredRegimeError{Key: key}
	}

	details.TaxableAmount = taxableAmount
	details.Currency = "USD"
	details.ExchangeRate, details.RateSource = s.displayRate(ctx, key, buyerCountry)

	return &responses.TaxCalculationResult{
		Taxes: details,
		Total: taxableAmount + details.EffectiveTaxAmount(),
	}, nil
}

func (s *TaxService) calculateVAT(regime business.VATRegime, taxableAmount float64, buyerVAT *string) responses.TaxDetails {
	if buyerVAT != nil && strings.HasPrefix(*buyerVAT, euVATPrefix) {
		// Intra-community B2B supply: liability shifts to the buyer and
		// no tax is collected by the seller.
		zero := 0.0
		reverse := true
		return responses.TaxDetails{
			VATRate:       &zero,
			VATAmount:     &zero,
			ReverseCharge: &reverse,
			Notes:         fmt.Sprintf("Reverse charge applies. Buyer VAT: %s", *buyerVAT),
		}
	}

	rate := regime.Rates.Standard
	// TODO: confirm whether distance-selling supplies should switch to the
	// buyer-country rate. Both branches apply the seller's standard rate
	// today, so the threshold comparison has no behavioral effect.
	if regime.Thresholds.DistanceSelling > 0 && taxableAmount < regime.Thresholds.DistanceSelling {
		rate = regime.Rates.Standard
	}

	amount := taxableAmount * rate
	return responses.TaxDetails{
		VATRate:   &rate,
		VATAmount: &amount,
	}
}

func (s *TaxService) calculateSalesTax(regime business.SalesTaxRegime, taxableAmount float64, rawJurisdiction, subregion string) (responses.TaxDetails, error) {
	rule, ok := regime.StateRules[subregion]
	if !ok {
		return responses.TaxDetails{}, &UnsupportedSubregionError{
			Jurisdiction: rawJurisdiction,
			Subregion:    subregion,
		}
	}

	// County and city surcharges are present in the rule data but are not
	// folded into the amount; the combination rule is undefined upstream.
	rate := rule.Rate
	amount := taxableAmount * rate
	return responses.TaxDetails{
		TaxRate:   &rate,
		TaxAmount: &amount,
	}, nil
}

func (s *TaxService) calculateGST(regime business.GSTRegime, taxableAmount float64) responses.TaxDetails {
	rate := regime.Rate
	amount := taxableAmount * rate
	return responses.TaxDetails{
		GSTRate:   &rate,
		GSTAmount: &amount,
	}
}

// displayRate fetches the informational USD rate for the buyer's currency.
// Lookup failures degrade to rate 1.0 tagged as fallback; they never fail
// the calculation.
func (s *TaxService) displayRate(ctx context.Context, key, buyerCountry string) (float64, string) {
	target := "USD"
	if j, ok := s.registry.Jurisdiction(key); ok {
		target = j.Currency
	} else if j, ok := s.registry.Jurisdiction(buyerCountry); ok {
		target = j.Currency
	}

	ctx, cancel := context.WithTimeout(ctx, rateLookupTimeout)
	defer cancel()

	result, err := s.rates.GetExchangeRate(ctx, params.ExchangeRateParams{Base: "USD", Target: target})
	if err != nil {
		s.logger.Warn("exchange rate lookup failed; display currency is approximate",
			zap.String("target", target),
			zap.Error(err))
		return 1.0, responses.RateSourceFallback
	}
	return result.Rate, result.Source
}

// splitJurisdiction separates an optional sub-region suffix from a buyer
// jurisdiction code: "US-CA" yields ("US", "CA"), "DE" yields ("DE", "").
func splitJurisdiction(code string) (country, subregion string) {
	parts := strings.SplitN(code, "-", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return code, ""
}
