package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/invoxa/invoxa-api/interfaces"
	"github.com/invoxa/invoxa-api/types/api/params"
	"go.uber.org/zap"
)

// CurrencyHandler exposes exchange-rate lookups.
type CurrencyHandler struct {
	common              *CommonServices
	exchangeRateService interfaces.ExchangeRateService
}

// NewCurrencyHandler creates a handler with interface dependencies.
func NewCurrencyHandler(common *CommonServices, exchangeRateService interfaces.ExchangeRateService) *CurrencyHandler {
	return &CurrencyHandler{
		common:              common,
		exchangeRateService: exchangeRateService,
	}
}

// GetExchangeRate returns the rate for one currency pair, tagged with its
// provenance (live, cache or fallback).
func (h *CurrencyHandler) GetExchangeRate(c *gin.Context) {
	base := strings.ToUpper(c.DefaultQuery("base", "USD"))
	target := strings.ToUpper(c.Query("symbol"))

	if target == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "symbol query parameter is required"})
		return
	}

	result, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), params.ExchangeRateParams{
		Base:   base,
		Target: target,
	})
	if err != nil {
		h.common.logger.Error("Failed to resolve exchange rate",
			zap.String("base", base),
			zap.String("target", target),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve exchange rate"})
		return
	}

	c.JSON(http.StatusOK, result)
}
