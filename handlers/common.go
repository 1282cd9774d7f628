package handlers

import (
	"github.com/invoxa/invoxa-api/interfaces"
	"github.com/invoxa/invoxa-api/logger"
	"github.com/invoxa/invoxa-api/services"
	"go.uber.org/zap"
)

// CommonServices holds shared dependencies used across handlers. Services
// are injected as interfaces so handler tests can substitute mocks.
type CommonServices struct {
	logger *zap.Logger

	Registry            *services.JurisdictionRegistry
	TaxService          interfaces.TaxService
	ExchangeRateService interfaces.ExchangeRateService
	ClauseService       interfaces.ClauseService
	ComplianceService   interfaces.ComplianceService
	VATValidator        interfaces.VATValidator
}

// CommonServicesConfig contains all dependencies needed to create
// CommonServices.
type CommonServicesConfig struct {
	Logger              *zap.Logger
	Registry            *services.JurisdictionRegistry
	TaxService          interfaces.TaxService
	ExchangeRateService interfaces.ExchangeRateService
	ClauseService       interfaces.ClauseService
	ComplianceService   interfaces.ComplianceService
	VATValidator        interfaces.VATValidator
}

// NewCommonServices creates a new instance of CommonServices.
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	return &CommonServices{
		logger:              config.Logger,
		Registry:            config.Registry,
		TaxService:          config.TaxService,
		ExchangeRateService: config.ExchangeRateService,
		ClauseService:       config.ClauseService,
		ComplianceService:   config.ComplianceService,
		VATValidator:        config.VATValidator,
	}
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}
