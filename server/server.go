package server

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/invoxa/invoxa-api/client/exchangerate"
	"github.com/invoxa/invoxa-api/client/vies"
	"github.com/invoxa/invoxa-api/constants"
	"github.com/invoxa/invoxa-api/handlers"
	"github.com/invoxa/invoxa-api/logger"
	"github.com/invoxa/invoxa-api/middleware"
	"github.com/invoxa/invoxa-api/services"
	"go.uber.org/zap"
)

// Config controls server construction.
type Config struct {
	Stage          string
	AllowedOrigins []string
}

// Server is the fully wired HTTP server. All services are constructed once
// here and injected explicitly; there is no hidden global state beyond the
// logger.
type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

// New builds the registry, services, clients and routes. A registry
// validation failure aborts construction: starting with a broken tax table
// is worse than not starting.
func New(cfg Config) (*Server, error) {
	registry, err := services.NewJurisdictionRegistry()
	if err != nil {
		return nil, fmt.Errorf("assembling jurisdiction registry: %w", err)
	}

	rateClient := exchangerate.NewClient()
	viesClient := vies.NewClient()

	exchangeRateService := services.NewExchangeRateService(rateClient)
	taxService := services.NewTaxService(registry, exchangeRateService)
	clauseService := services.NewLegalClauseService()
	complianceService := services.NewComplianceService()

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		Logger:              logger.Log,
		Registry:            registry,
		TaxService:          taxService,
		ExchangeRateService: exchangeRateService,
		ClauseService:       clauseService,
		ComplianceService:   complianceService,
		VATValidator:        viesClient,
	})

	taxHandler := handlers.NewTaxHandler(common, taxService)
	clauseHandler := handlers.NewClauseHandler(common, clauseService)
	currencyHandler := handlers.NewCurrencyHandler(common, exchangeRateService)
	complianceHandler := handlers.NewComplianceHandler(common, complianceService, viesClient)
	healthHandler := handlers.NewHealthHandler(common)

	if cfg.Stage == constants.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())
	router.Use(cors.New(corsConfig(cfg)))

	router.GET("/healthz", healthHandler.Healthz)
	router.GET("/readyz", healthHandler.Readyz)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/tax/calculations", taxHandler.CalculateTaxes)
		v1.POST("/legal/clauses", clauseHandler.GenerateClause)
		v1.GET("/exchange-rates", currencyHandler.GetExchangeRate)

		compliance := v1.Group("/compliance")
		{
			// The upstream VAT registry tolerates very little traffic;
			// mirror its budget at our edge.
			vatLimiter := middleware.PerMinute(5)
			compliance.GET("/vat/validate", vatLimiter.Middleware(), complianceHandler.ValidateVAT)
			compliance.GET("/requirements", complianceHandler.GetRequirements)
		}
	}

	return &Server{
		router: router,
		logger: logger.Log,
	}, nil
}

// Router exposes the underlying gin engine, primarily for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP listener on the configured port.
func (s *Server) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = constants.DefaultPort
	}

	s.logger.Info("Server starting", zap.String("port", port))
	return s.router.Run(":" + port)
}

func corsConfig(cfg Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middleware.CorrelationIDHeader)
	corsCfg.MaxAge = 12 * time.Hour

	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		return corsCfg
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		corsCfg.AllowOrigins = strings.Split(origins, ",")
		return corsCfg
	}

	// Local development default.
	corsCfg.AllowAllOrigins = true
	return corsCfg
}
