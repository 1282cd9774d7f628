package responses

// VATCompany holds the registered company details returned for a valid
// VAT number.
type VATCompany struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// VATValidationResult is the outcome of a VAT-number check.
type VATValidationResult struct {
	Valid   bool        `json:"valid"`
	Company *VATCompany `json:"company"`
	Error   string      `json:"error,omitempty"`
}

// ComplianceRequirements summarizes registration obligations for a country.
type ComplianceRequirements struct {
	Country                 string   `json:"country"`
	BusinessIDRequirements  []string `json:"business_id_requirements"`
	GSTRegistrationRequired bool     `json:"gst_registration_required"`
	GSTThreshold            *float64 `json:"gst_threshold,omitempty"`
}
