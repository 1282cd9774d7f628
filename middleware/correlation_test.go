package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/invoxa/invoxa-api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	newRouter := func(capture *string) *gin.Engine {
		router := gin.New()
		router.Use(middleware.CorrelationIDMiddleware())
		router.GET("/", func(c *gin.Context) {
			*capture = middleware.CorrelationIDFromContext(c.Request.Context())
			assert.Equal(t, *capture, middleware.GetCorrelationID(c))
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("caller-supplied ID is propagated", func(t *testing.T) {
		var seen string
		router := newRouter(&seen)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.CorrelationIDHeader, "req-12345")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, "req-12345", seen)
		assert.Equal(t, "req-12345", recorder.Header().Get(middleware.CorrelationIDHeader))
	})

	t.Run("missing ID is generated", func(t *testing.T) {
		var seen string
		router := newRouter(&seen)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, recorder.Header().Get(middleware.CorrelationIDHeader))
	})
}
