package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/invoxa/invoxa-api/handlers"
	"github.com/invoxa/invoxa-api/services"
	"github.com/invoxa/invoxa-api/types/api/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClauseRouter(t *testing.T) *gin.Engine {
	t.Helper()

	registry, err := services.NewJurisdictionRegistry()
	require.NoError(t, err)
	clauseService := services.NewLegalClauseService()

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		Logger:        zap.NewNop(),
		Registry:      registry,
		ClauseService: clauseService,
	})
	handler := handlers.NewClauseHandler(common, clauseService)

	router := gin.New()
	router.POST("/api/v1/legal/clauses", handler.GenerateClause)
	return router
}

func TestClauseHandler_GenerateClause(t *testing.T) {
	t.Run("known clause type and jurisdiction", func(t *testing.T) {
		router := newClauseRouter(t)

		recorder := postJSON(router, "/api/v1/legal/clauses", `{
			"clause_type": "paymentTerms",
			"jurisdiction_code": "US",
			"variables": {"days": "30", "rate": "1.5"}
		}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		var result responses.ClauseResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.Equal(t, "paymentTerms", result.ClauseType)
		assert.Equal(t, "US", result.JurisdictionCode)
		assert.Contains(t, result.Text, "30 days")
		assert.Contains(t, result.Text, "1.5%")
	})

	t.Run("UK resolves its dedicated template", func(t *testing.T) {
		router := newClauseRouter(t)

		recorder := postJSON(router, "/api/v1/legal/clauses", `{
			"clause_type": "paymentTerms",
			"jurisdiction_code": "UK",
			"variables": {"days": "14"}
		}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		var result responses.ClauseResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.Contains(t, result.Text, "Late Payment of Commercial Debts Act")
	})

	t.Run("VAT jurisdiction without a template falls back to EU text", func(t *testing.T) {
		router := newClauseRouter(t)

		recorder := postJSON(router, "/api/v1/legal/clauses", `{
			"clause_type": "paymentTerms",
			"jurisdiction_code": "DE",
			"variables": {"days": "30"}
		}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		var result responses.ClauseResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.Contains(t, result.Text, "European Directive 2011/7/EU")
	})

	t.Run("unknown jurisdiction code composes the default clause", func(t *testing.T) {
		router := newClauseRouter(t)

		recorder := postJSON(router, "/api/v1/legal/clauses", `{
			"clause_type": "retentionOfTitle",
			"jurisdiction_code": "ZZ"
		}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		var result responses.ClauseResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.Equal(t, "Goods remain seller's property until paid in full.", result.Text)
	})

	t.Run("unknown clause type is rejected", func(t *testing.T) {
		router := newClauseRouter(t)

		recorder := postJSON(router, "/api/v1/legal/clauses", `{
			"clause_type": "warranty",
			"jurisdiction_code": "US"
		}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Unknown clause type")
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		router := newClauseRouter(t)

		recorder := postJSON(router, "/api/v1/legal/clauses", `{"clause_type":`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
