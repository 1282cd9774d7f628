package exchangerate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/invoxa/invoxa-api/client/exchangerate"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchRates(t *testing.T) {
	t.Run("returns rates for the requested symbols", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/latest", r.URL.Path)
			assert.Equal(t, "USD", r.URL.Query().Get("base"))
			assert.Equal(t, "EUR,GBP", r.URL.Query().Get("symbols"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"base":"USD","date":"2026-08-27","rates":{"EUR":0.91,"GBP":0.78}}`))
		}))
		defer server.Close()

		client := exchangerate.NewClient(exchangerate.WithBaseURL(server.URL))
		rates, err := client.FetchRates(context.Background(), "usd", []string{"eur", "gbp"})
		require.NoError(t, err)
		assert.Equal(t, 0.91, rates["EUR"])
		assert.Equal(t, 0.78, rates["GBP"])
	})

	t.Run("non-200 status surfaces as APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := exchangerate.NewClient(exchangerate.WithBaseURL(server.URL))
		_, err := client.FetchRates(context.Background(), "USD", []string{"EUR"})

		var apiErr *exchangerate.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "rate limit exceeded")
	})

	t.Run("empty rate table is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"base":"USD","rates":{}}`))
		}))
		defer server.Close()

		client := exchangerate.NewClient(exchangerate.WithBaseURL(server.URL))
		_, err := client.FetchRates(context.Background(), "USD", []string{"EUR"})
		assert.Error(t, err)
	})

	t.Run("malformed payload is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := exchangerate.NewClient(exchangerate.WithBaseURL(server.URL))
		_, err := client.FetchRates(context.Background(), "USD", []string{"EUR"})
		assert.Error(t, err)
	})

	t.Run("missing base currency is rejected locally", func(t *testing.T) {
		client := exchangerate.NewClient()
		_, err := client.FetchRates(context.Background(), "", nil)
		require.Error(t, err)
		assert.Equal(t, "base currency is required", errors.Cause(err).Error())
	})

	t.Run("cancelled context aborts the request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rates":{"EUR":0.91}}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := exchangerate.NewClient(exchangerate.WithBaseURL(server.URL))
		_, err := client.FetchRates(ctx, "USD", []string{"EUR"})
		assert.Error(t, err)
	})
}
