package services

import (
	"regexp"
	"strings"
)

// euVATFormat is the accepted shape for intra-community VAT identifiers:
// the EU marker, a two-letter member state code, then 8-12 alphanumerics.
var euVATFormat = regexp.MustCompile(`^EU[A-Z]{2}[0-9A-Z]{8,12}$`)

// gstRegistrationThresholds are annual revenue amounts (in local currency)
// above which a business must register for GST in that country.
var gstRegistrationThresholds = map[string]float64{
	"AU": 75000,
	"NZ": 60000,
	"CA": 30000,
	"SG": 1000000,
	"ZA": 50000,
	"IN": 2000000,
}

// businessIDRequirements lists the local business identifiers an invoice
// issuer is expected to carry per country.
var businessIDRequirements = map[string][]string{
	"US": {"EIN"},
	"CA": {"BN"},
	"AU": {"ABN"},
	"UK": {"UTR"},
	"DE": {"Steuernummer"},
	"FR": {"SIRET"},
	"BR": {"CNPJ"},
	"IN": {"GSTIN"},
}

// ComplianceService answers registration-obligation and identifier-format
// questions. Pure lookups over static data; safe for concurrent use.
type ComplianceService struct{}

// NewComplianceService creates a compliance service.
func NewComplianceService() *ComplianceService {
	return &ComplianceService{}
}

// NormalizeVATNumber uppercases and strips all whitespace from a
// user-supplied VAT identifier.
func NormalizeVATNumber(vatNumber string) string {
	return strings.Join(strings.Fields(strings.ToUpper(vatNumber)), "")
}

// ValidateVATFormat reports whether the identifier is a well-formed
// intra-community VAT number. Format acceptance is a precondition for the
// remote registry check, not a substitute for it.
func (s *ComplianceService) ValidateVATFormat(vatNumber string) bool {
	return euVATFormat.MatchString(NormalizeVATNumber(vatNumber))
}

// RequiresGSTRegistration reports whether annualRevenue exceeds the
// country's GST registration threshold. Countries without a threshold
// never require registration through this check.
func (s *ComplianceService) RequiresGSTRegistration(country string, annualRevenue float64) bool {
	threshold, ok := gstRegistrationThresholds[country]
	if !ok {
		return false
	}
	return threshold < annualRevenue
}

// GSTThreshold returns the registration threshold for a country when one
// is configured.
func (s *ComplianceService) GSTThreshold(country string) (float64, bool) {
	threshold, ok := gstRegistrationThresholds[country]
	return threshold, ok
}

// BusinessIDRequirements returns the local business identifiers required
// in a country, defaulting to a generic registration number.
func (s *ComplianceService) BusinessIDRequirements(country string) []string {
	if ids, ok := businessIDRequirements[country]; ok {
		return ids
	}
	return []string{"Business Registration Number"}
}
