package requests

// GenerateClauseRequest is the payload for POST /api/v1/legal/clauses.
// Variables fills {key} placeholders in the selected template.
type GenerateClauseRequest struct {
	ClauseType       string            `json:"clause_type" binding:"required"`
	JurisdictionCode string            `json:"jurisdiction_code" binding:"required,min=2,max=6"`
	Variables        map[string]string `json:"variables"`
}
