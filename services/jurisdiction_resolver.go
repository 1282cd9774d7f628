package services

// euMemberStates is the fixed set of 27 EU member country codes that share
// the common VAT regime.
var euMemberStates = map[string]bool{
	"AT": true, "BE": true, "BG": true, "CY": true, "CZ": true, "DE": true,
	"DK": true, "EE": true, "ES": true, "FI": true, "FR": true, "GR": true,
	"HR": true, "HU": true, "IE": true, "IT": true, "LT": true, "LU": true,
	"LV": true, "MT": true, "NL": true, "PL": true, "PT": true, "RO": true,
	"SE": true, "SI": true, "SK": true,
}

// ResolveJurisdiction maps a raw country code to the canonical regime key
// used by the registry. It is pure and total: malformed codes pass through
// unchanged and fail at the registry lookup, not here.
//
// Rules, in order: EU member states collapse to "EU"; "GB" maps to "UK"
// (the EU-derived rate table no longer applies and the UK carries distinct
// legal text); "AU" and "NZ" are grouped under "AU" for GST purposes;
// anything else is used directly as the regime key.
func ResolveJurisdiction(countryCode string) string {
	if euMemberStates[countryCode] {
		return "EU"
	}
	if countryCode == "GB" {
		return "UK"
	}
	if countryCode == "AU" || countryCode == "NZ" {
		return "AU"
	}
	return countryCode
}
