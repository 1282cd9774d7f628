package responses

// ClauseResult is the resolved legal clause text for an invoice document.
type ClauseResult struct {
	ClauseType       string `json:"clause_type"`
	JurisdictionCode string `json:"jurisdiction_code"`
	Text             string `json:"text"`
}
