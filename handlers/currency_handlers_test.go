package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoxa/invoxa-api/handlers"
	"github.com/invoxa/invoxa-api/mocks"
	"github.com/invoxa/invoxa-api/types/api/params"
	"github.com/invoxa/invoxa-api/types/api/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newCurrencyRouter(t *testing.T) (*gin.Engine, *mocks.MockExchangeRateService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	rateService := mocks.NewMockExchangeRateService(ctrl)

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		Logger:              zap.NewNop(),
		ExchangeRateService: rateService,
	})
	handler := handlers.NewCurrencyHandler(common, rateService)

	router := gin.New()
	router.GET("/api/v1/exchange-rates", handler.GetExchangeRate)
	return router, rateService
}

func TestCurrencyHandler_GetExchangeRate(t *testing.T) {
	t.Run("base defaults to USD and symbol is uppercased", func(t *testing.T) {
		router, rateService := newCurrencyRouter(t)

		rateService.EXPECT().
			GetExchangeRate(gomock.Any(), params.ExchangeRateParams{Base: "USD", Target: "EUR"}).
			Return(&responses.ExchangeRateResult{
				Base:   "USD",
				Target: "EUR",
				Rate:   0.93,
				Source: responses.RateSourceLive,
				AsOf:   time.Now(),
			}, nil)

		recorder := getPath(router, "/api/v1/exchange-rates?symbol=eur")
		require.Equal(t, http.StatusOK, recorder.Code)

		var result responses.ExchangeRateResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.Equal(t, 0.93, result.Rate)
		assert.Equal(t, responses.RateSourceLive, result.Source)
	})

	t.Run("explicit base is forwarded", func(t *testing.T) {
		router, rateService := newCurrencyRouter(t)

		rateService.EXPECT().
			GetExchangeRate(gomock.Any(), params.ExchangeRateParams{Base: "EUR", Target: "GBP"}).
			Return(&responses.ExchangeRateResult{Base: "EUR", Target: "GBP", Rate: 0.85}, nil)

		recorder := getPath(router, "/api/v1/exchange-rates?base=EUR&symbol=GBP")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing symbol is rejected", func(t *testing.T) {
		router, _ := newCurrencyRouter(t)

		recorder := getPath(router, "/api/v1/exchange-rates")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
