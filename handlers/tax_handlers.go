package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invoxa/invoxa-api/interfaces"
	"github.com/invoxa/invoxa-api/services"
	"github.com/invoxa/invoxa-api/types/api/params"
	"github.com/invoxa/invoxa-api/types/api/requests"
	"github.com/invoxa/invoxa-api/types/business"
	"go.uber.org/zap"
)

// TaxHandler exposes the tax calculation engine over HTTP.
type TaxHandler struct {
	common     *CommonServices
	taxService interfaces.TaxService
}

// NewTaxHandler creates a handler with interface dependencies.
func NewTaxHandler(common *CommonServices, taxService interfaces.TaxService) *TaxHandler {
	return &TaxHandler{
		common:     common,
		taxService: taxService,
	}
}

// CalculateTaxes computes the jurisdiction-aware tax breakdown for a set
// of line items.
//
// An unresolved tax state is a hard stop for invoice issuance, so
// unsupported jurisdictions and sub-regions surface as 422 rather than a
// zero-tax success.
func (h *TaxHandler) CalculateTaxes(c *gin.Context) {
	var req requests.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	items := make([]business.InvoiceLineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, business.InvoiceLineItem{
			Description: item.Description,
			Amount:      item.Amount,
			Quantity:    item.Quantity,
			TaxCode:     item.TaxCode,
		})
	}

	result, err := h.taxService.CalculateTaxes(c.Request.Context(), params.TaxCalculationParams{
		Items:              items,
		SellerJurisdiction: req.SellerCountry,
		BuyerJurisdiction:  req.BuyerCountry,
		SellerVATNumber:    req.SellerVATNumber,
		BuyerVATNumber:     req.BuyerVATNumber,
	})
	if err != nil {
		h.respondCalculationError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *TaxHandler) respondCalculationError(c *gin.Context, err error) {
	var unsupportedJurisdiction *services.UnsupportedJurisdictionError
	var unsupportedSubregion *services.UnsupportedSubregionError
	var misconfigured *services.MisconfiguredRegimeError

	switch {
	case errors.As(err, &unsupportedJurisdiction):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.As(err, &unsupportedSubregion):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.As(err, &misconfigured):
		// Registry data inconsistency is a defect, not a caller problem.
		h.common.logger.Error("tax calculation hit misconfigured regime",
			zap.String("key", misconfigured.Key),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Tax configuration error"})
	default:
		h.common.logger.Error("tax calculation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to calculate taxes"})
	}
}
