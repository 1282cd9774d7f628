package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/invoxa/invoxa-api/handlers"
	"github.com/invoxa/invoxa-api/mocks"
	"github.com/invoxa/invoxa-api/services"
	"github.com/invoxa/invoxa-api/types/api/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTaxRouter(t *testing.T) (*gin.Engine, *mocks.MockTaxService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	taxService := mocks.NewMockTaxService(ctrl)

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		Logger:     zap.NewNop(),
		TaxService: taxService,
	})
	handler := handlers.NewTaxHandler(common, taxService)

	router := gin.New()
	router.POST("/api/v1/tax/calculations", handler.CalculateTaxes)
	return router, taxService
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

const calculateTaxBody = `{
	"items": [{"description": "Consulting", "amount": 100, "quantity": 1}],
	"seller_country": "US",
	"buyer_country": "US-CA"
}`

func TestTaxHandler_CalculateTaxes(t *testing.T) {
	t.Run("successful calculation returns the breakdown", func(t *testing.T) {
		router, taxService := newTaxRouter(t)

		rate := 0.0825
		amount := 8.25
		taxService.EXPECT().
			CalculateTaxes(gomock.Any(), gomock.Any()).
			Return(&responses.TaxCalculationResult{
				Taxes: responses.TaxDetails{
					TaxRate:       &rate,
					TaxAmount:     &amount,
					TaxableAmount: 100,
					Currency:      "USD",
					ExchangeRate:  1,
					RateSource:    responses.RateSourceLive,
				},
				Total: 108.25,
			}, nil)

		recorder := postJSON(router, "/api/v1/tax/calculations", calculateTaxBody)
		require.Equal(t, http.StatusOK, recorder.Code)

		var result responses.TaxCalculationResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		require.NotNil(t, result.Taxes.TaxRate)
		assert.Equal(t, 0.0825, *result.Taxes.TaxRate)
		assert.Equal(t, 108.25, result.Total)
		assert.Equal(t, "USD", result.Taxes.Currency)
	})

	t.Run("unsupported jurisdiction maps to 422", func(t *testing.T) {
		router, taxService := newTaxRouter(t)

		taxService.EXPECT().
			CalculateTaxes(gomock.Any(), gomock.Any()).
			Return(nil, &services.UnsupportedJurisdictionError{Code: "ZZ"})

		recorder := postJSON(router, "/api/v1/tax/calculations", calculateTaxBody)
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "ZZ")
	})

	t.Run("unsupported subregion maps to 422", func(t *testing.T) {
		router, taxService := newTaxRouter(t)

		taxService.EXPECT().
			CalculateTaxes(gomock.Any(), gomock.Any()).
			Return(nil, &services.UnsupportedSubregionError{Jurisdiction: "US-ZZ", Subregion: "ZZ"})

		recorder := postJSON(router, "/api/v1/tax/calculations", calculateTaxBody)
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("misconfigured regime maps to 500 without leaking details", func(t *testing.T) {
		router, taxService := newTaxRouter(t)

		taxService.EXPECT().
			CalculateTaxes(gomock.Any(), gomock.Any()).
			Return(nil, &services.MisconfiguredRegimeError{Key: "EU"})

		recorder := postJSON(router, "/api/v1/tax/calculations", calculateTaxBody)
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Tax configuration error")
		assert.NotContains(t, recorder.Body.String(), "EU")
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		router, _ := newTaxRouter(t)

		recorder := postJSON(router, "/api/v1/tax/calculations", `{"items":`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("empty item list fails validation", func(t *testing.T) {
		router, _ := newTaxRouter(t)

		recorder := postJSON(router, "/api/v1/tax/calculations", `{
			"items": [],
			"seller_country": "US",
			"buyer_country": "US-CA"
		}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing buyer country fails validation", func(t *testing.T) {
		router, _ := newTaxRouter(t)

		recorder := postJSON(router, "/api/v1/tax/calculations", `{
			"items": [{"description": "Consulting", "amount": 100, "quantity": 1}],
			"seller_country": "US"
		}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
