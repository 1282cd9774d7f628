package business

// TaxType classifies the consumption-tax system a jurisdiction operates.
type TaxType string

const (
	TaxTypeVAT      TaxType = "VAT"
	TaxTypeGST      TaxType = "GST"
	TaxTypeSalesTax TaxType = "SalesTax"
	TaxTypeJCT      TaxType = "JCT"
)

// Jurisdiction is immutable reference data identifying a tax territory.
// Code is ISO-3166 alpha-2 or a synthetic group code such as "EU".
type Jurisdiction struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	TaxType  TaxType `json:"tax_type"`
	Currency string  `json:"currency"` // ISO-4217
}

// RegimeKind discriminates the tax regime variants.
type RegimeKind string

const (
	RegimeVAT      RegimeKind = "vat"
	RegimeGST      RegimeKind = "gst"
	RegimeSalesTax RegimeKind = "sales_tax"
)

// TaxRegime is the closed set of regime configurations the registry serves.
// Modeling the regime as a sum type makes "exactly one of vat/gst/salesTax"
// a structural guarantee instead of a runtime flag check.
type TaxRegime interface {
	Kind() RegimeKind
}

// VATRates holds the fractional VAT rate bands. Standard is always set;
// Reduced and SuperReduced are zero when the regime does not offer them.
type VATRates struct {
	Standard     float64 `json:"standard"`
	Reduced      float64 `json:"reduced,omitempty"`
	SuperReduced float64 `json:"super_reduced,omitempty"`
}

// VATThresholds are monetary amounts in the regime's base currency.
type VATThresholds struct {
	IntraCommunity  float64 `json:"intra_community,omitempty"`
	DistanceSelling float64 `json:"distance_selling,omitempty"`
}

// VATRegime configures an EU-style VAT jurisdiction.
type VATRegime struct {
	Rates         VATRates      `json:"rates"`
	ReverseCharge bool          `json:"reverse_charge"`
	Thresholds    VATThresholds `json:"thresholds"`
}

func (VATRegime) Kind() RegimeKind { return RegimeVAT }

// GSTRegime configures a single-rate GST jurisdiction (AU/NZ style).
type GSTRegime struct {
	Rate float64 `json:"rate"`
}

func (GSTRegime) Kind() RegimeKind { return RegimeGST }

// StateTaxRule holds the sub-national rate plus surcharge metadata for one
// state. CountyTax and CityTax are carried as configured data but are not
// folded into the computed amount; see TaxService.calculateSalesTax.
type StateTaxRule struct {
	Rate      float64            `json:"rate"`
	CountyTax bool               `json:"county_tax,omitempty"`
	CityTax   map[string]float64 `json:"city_tax,omitempty"`
}

// SalesTaxRegime configures a US-style sales-tax jurisdiction keyed by
// sub-region code. Every sub-region the engine may be asked to resolve must
// have an entry; a missing entry is a hard calculation failure, never a
// silent zero rate.
type SalesTaxRegime struct {
	StateRules map[string]StateTaxRule `json:"state_rules"`
}

func (SalesTaxRegime) Kind() RegimeKind { return RegimeSalesTax }
