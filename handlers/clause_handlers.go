package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invoxa/invoxa-api/interfaces"
	"github.com/invoxa/invoxa-api/types/api/requests"
	"github.com/invoxa/invoxa-api/types/api/responses"
	"github.com/invoxa/invoxa-api/types/business"
)

// ClauseHandler exposes legal clause composition for invoice documents.
type ClauseHandler struct {
	common        *CommonServices
	clauseService interfaces.ClauseService
}

// NewClauseHandler creates a handler with interface dependencies.
func NewClauseHandler(common *CommonServices, clauseService interfaces.ClauseService) *ClauseHandler {
	return &ClauseHandler{
		common:        common,
		clauseService: clauseService,
	}
}

// GenerateClause resolves clause text for a jurisdiction. Unknown
// jurisdiction codes still yield a default clause; only an unknown clause
// type is rejected.
func (h *ClauseHandler) GenerateClause(c *gin.Context) {
	var req requests.GenerateClauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	clauseType := business.ClauseType(req.ClauseType)
	if !business.IsValidClauseType(clauseType) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown clause type"})
		return
	}

	// Registry metadata drives the VAT-vs-default fallback. A code the
	// registry does not know still composes: the zero-value jurisdiction
	// routes to the non-VAT default.
	jurisdiction, ok := h.common.Registry.Jurisdiction(req.JurisdictionCode)
	if !ok {
		jurisdiction = business.Jurisdiction{Code: req.JurisdictionCode}
	}

	text := h.clauseService.GenerateClause(clauseType, jurisdiction, req.Variables)

	c.JSON(http.StatusOK, responses.ClauseResult{
		ClauseType:       req.ClauseType,
		JurisdictionCode: req.JurisdictionCode,
		Text:             text,
	})
}
