package vies_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/invoxa/invoxa-api/client/vies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Validate(t *testing.T) {
	t.Run("valid number returns company details", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ms/FR/vat/12345678", r.URL.Path)
			_, _ = w.Write([]byte(`{"isValid":true,"name":"  ACME SARL  ","address":"1 Rue de Paris"}`))
		}))
		defer server.Close()

		client := vies.NewClient(vies.WithBaseURL(server.URL))
		result, err := client.Validate(context.Background(), "FR", "12345678")
		require.NoError(t, err)

		assert.True(t, result.Valid)
		require.NotNil(t, result.Company)
		assert.Equal(t, "ACME SARL", result.Company.Name)
		assert.Equal(t, "1 Rue de Paris", result.Company.Address)
	})

	t.Run("invalid number omits company details", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"isValid":false}`))
		}))
		defer server.Close()

		client := vies.NewClient(vies.WithBaseURL(server.URL))
		result, err := client.Validate(context.Background(), "DE", "123456789")
		require.NoError(t, err)

		assert.False(t, result.Valid)
		assert.Nil(t, result.Company)
	})

	t.Run("transient server errors are retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"isValid":true,"name":"ACME SARL","address":""}`))
		}))
		defer server.Close()

		client := vies.NewClient(vies.WithBaseURL(server.URL))
		result, err := client.Validate(context.Background(), "FR", "12345678")
		require.NoError(t, err)

		assert.True(t, result.Valid)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "unknown member state", http.StatusBadRequest)
		}))
		defer server.Close()

		client := vies.NewClient(vies.WithBaseURL(server.URL))
		_, err := client.Validate(context.Background(), "XX", "12345678")
		require.Error(t, err)

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("persistent server errors exhaust the retry budget", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "upstream unavailable", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := vies.NewClient(vies.WithBaseURL(server.URL))
		_, err := client.Validate(context.Background(), "FR", "12345678")
		require.Error(t, err)

		// Initial attempt plus two retries.
		assert.Equal(t, int32(3), calls.Load())
	})
}
