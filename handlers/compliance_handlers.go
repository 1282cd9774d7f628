package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/invoxa/invoxa-api/interfaces"
	"github.com/invoxa/invoxa-api/services"
	"github.com/invoxa/invoxa-api/types/api/responses"
	"go.uber.org/zap"
)

// ComplianceHandler exposes VAT validation and registration requirement
// lookups.
type ComplianceHandler struct {
	common            *CommonServices
	complianceService interfaces.ComplianceService
	vatValidator      interfaces.VATValidator
}

// NewComplianceHandler creates a handler with interface dependencies.
func NewComplianceHandler(common *CommonServices, complianceService interfaces.ComplianceService, vatValidator interfaces.VATValidator) *ComplianceHandler {
	return &ComplianceHandler{
		common:            common,
		complianceService: complianceService,
		vatValidator:      vatValidator,
	}
}

// ValidateVAT checks a buyer-supplied VAT number: format first, then the
// upstream registry. Callers must pass this check before a VAT number is
// trusted for reverse-charge eligibility.
func (h *ComplianceHandler) ValidateVAT(c *gin.Context) {
	vatNumber := c.Query("vat_number")
	if vatNumber == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid VAT number format"})
		return
	}

	cleaned := services.NormalizeVATNumber(vatNumber)
	if !h.complianceService.ValidateVATFormat(cleaned) {
		c.JSON(http.StatusBadRequest, responses.VATValidationResult{Valid: false, Error: "Invalid format"})
		return
	}

	// Strip the EU marker: the registry wants the member state code and
	// the national number separately.
	national := strings.TrimPrefix(cleaned, "EU")
	countryCode := national[:2]
	number := national[2:]

	result, err := h.vatValidator.Validate(c.Request.Context(), countryCode, number)
	if err != nil {
		h.common.logger.Error("VAT validation failed",
			zap.String("country", countryCode),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Validation service unavailable"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRequirements summarizes registration obligations for a country at a
// given annual revenue.
func (h *ComplianceHandler) GetRequirements(c *gin.Context) {
	country := strings.ToUpper(c.Query("country"))
	if len(country) != 2 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "country query parameter must be a 2-letter code"})
		return
	}

	annualRevenue := 0.0
	if raw := c.Query("annual_revenue"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "annual_revenue must be a non-negative number"})
			return
		}
		annualRevenue = parsed
	}

	result := responses.ComplianceRequirements{
		Country:                 country,
		BusinessIDRequirements:  h.complianceService.BusinessIDRequirements(country),
		GSTRegistrationRequired: h.complianceService.RequiresGSTRegistration(country, annualRevenue),
	}
	if threshold, ok := h.complianceService.GSTThreshold(country); ok {
		result.GSTThreshold = &threshold
	}

	c.JSON(http.StatusOK, result)
}
