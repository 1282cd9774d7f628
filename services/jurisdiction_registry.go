package services

import (
	"fmt"

	"github.com/invoxa/invoxa-api/types/business"
)

// taxMatrix is the pre-configured rule set per canonical jurisdiction key.
// Extending coverage to a new jurisdiction means adding a table entry here,
// not code; entries are validated once at registry construction.
var taxMatrix = map[string]business.TaxRegime{
	"EU": business.VATRegime{
		Rates:         business.VATRates{Standard: 0.21, Reduced: 0.09, SuperReduced: 0.05},
		ReverseCharge: true,
		Thresholds: business.VATThresholds{
			IntraCommunity:  10000,
			DistanceSelling: 35000,
		},
	},
	"UK": business.VATRegime{
		Rates: business.VATRates{Standard: 0.20},
	},
	"US": business.SalesTaxRegime{
		StateRules: map[string]business.StateTaxRule{
			"CA": {Rate: 0.0825, CountyTax: true},
			"NY": {Rate: 0.04, CityTax: map[string]float64{"NYC": 0.045}},
			"TX": {Rate: 0.0625},
			"FL": {Rate: 0.06},
			"WA": {Rate: 0.065},
			"PA": {Rate: 0.06},
		},
	},
	"AU": business.GSTRegime{Rate: 0.10},
	"CA": business.GSTRegime{Rate: 0.05},
	"SG": business.GSTRegime{Rate: 0.09},
	// Japanese consumption tax behaves like VAT for calculation purposes.
	"JP": business.VATRegime{
		Rates: business.VATRates{Standard: 0.10, Reduced: 0.08},
	},
	"CH": business.VATRegime{
		Rates: business.VATRates{Standard: 0.081, Reduced: 0.026},
	},
}

// jurisdictionTable is reference metadata for the territories the platform
// issues invoices into. The clause composer and currency adapter key off it.
var jurisdictionTable = map[string]business.Jurisdiction{
	"EU": {Code: "EU", Name: "European Union", TaxType: business.TaxTypeVAT, Currency: "EUR"},
	"UK": {Code: "UK", Name: "United Kingdom", TaxType: business.TaxTypeVAT, Currency: "GBP"},
	"US": {Code: "US", Name: "United States", TaxType: business.TaxTypeSalesTax, Currency: "USD"},
	"AU": {Code: "AU", Name: "Australia", TaxType: business.TaxTypeGST, Currency: "AUD"},
	"NZ": {Code: "NZ", Name: "New Zealand", TaxType: business.TaxTypeGST, Currency: "NZD"},
	"CA": {Code: "CA", Name: "Canada", TaxType: business.TaxTypeGST, Currency: "CAD"},
	"SG": {Code: "SG", Name: "Singapore", TaxType: business.TaxTypeGST, Currency: "SGD"},
	"JP": {Code: "JP", Name: "Japan", TaxType: business.TaxTypeJCT, Currency: "JPY"},
	"CH": {Code: "CH", Name: "Switzerland", TaxType: business.TaxTypeVAT, Currency: "CHF"},
	"DE": {Code: "DE", Name: "Germany", TaxType: business.TaxTypeVAT, Currency: "EUR"},
	"FR": {Code: "FR", Name: "France", TaxType: business.TaxTypeVAT, Currency: "EUR"},
}

// JurisdictionRegistry serves immutable tax regime configuration. It is
// built once at process start and is read-only thereafter, so concurrent
// lookups need no locking.
type JurisdictionRegistry struct {
	regimes       map[string]business.TaxRegime
	jurisdictions map[string]business.Jurisdiction
}

// NewJurisdictionRegistry assembles and validates the embedded regime
// table. Validation failures are defects in the table itself and abort
// startup rather than surfacing mid-calculation.
func NewJurisdictionRegistry() (*JurisdictionRegistry, error) {
	for key, regime := range taxMatrix {
		if err := validateRegime(key, regime); err != nil {
			return nil, err
		}
	}
	return &JurisdictionRegistry{
		regimes:       taxMatrix,
		jurisdictions: jurisdictionTable,
	}, nil
}

// Regime returns the tax regime configured for a canonical jurisdiction
// key.
func (r *JurisdictionRegistry) Regime(key string) (business.TaxRegime, bool) {
	regime, ok := r.regimes[key]
	return regime, ok
}

// Jurisdiction returns reference metadata for a jurisdiction code.
func (r *JurisdictionRegistry) Jurisdiction(code string) (business.Jurisdiction, bool) {
	j, ok := r.jurisdictions[code]
	return j, ok
}

func validateRegime(key string, regime business.TaxRegime) error {
	switch t := regime.(type) {
	case business.VATRegime:
		if err := validateRate(key, "standard", t.Rates.Standard); err != nil {
			return err
		}
		if err := validateRate(key, "reduced", t.Rates.Reduced); err != nil {
			return err
		}
		if err := validateRate(key, "super_reduced", t.Rates.SuperReduced); err != nil {
			return err
		}
	case business.GSTRegime:
		if err := validateRate(key, "gst", t.Rate); err != nil {
			return err
		}
	case business.SalesTaxRegime:
		if len(t.StateRules) == 0 {
			return fmt.Errorf("sales tax regime %q has no state rules", key)
		}
		for state, rule := range t.StateRules {
			if err := validateRate(key, state, rule.Rate); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("regime %q has unknown kind", key)
	}
	return nil
}

func validateRate(key, name string, rate float64) error {
	if rate < 0 || rate > 1 {
		return fmt.Errorf("regime %q: rate %s out of range: %v", key, name, rate)
	}
	return nil
}
