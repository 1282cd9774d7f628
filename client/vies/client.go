package vies

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/invoxa/invoxa-api/types/api/responses"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://ec.europa.eu/taxation_customs/vies/rest-api"
	defaultTimeout = 10 * time.Second
	maxRetries     = 2
)

// Client checks VAT numbers against the European Commission VIES service.
// The upstream is notoriously flaky, so requests retry with exponential
// backoff before giving up.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the VIES base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates a VIES client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// checkVATResponse matches the VIES REST payload.
type checkVATResponse struct {
	IsValid bool   `json:"isValid"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Validate checks one VAT number for the given member state. countryCode is
// the two-letter member state code, vatNumber the national part without the
// country prefix.
func (c *Client) Validate(ctx context.Context, countryCode, vatNumber string) (*responses.VATValidationResult, error) {
	endpoint := fmt.Sprintf("%s/ms/%s/vat/%s", c.baseURL, countryCode, vatNumber)

	var parsed checkVATResponse
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "building VIES request"))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return errors.Wrap(err, "calling VIES")
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return errors.Wrap(err, "reading VIES response")
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			if err := json.Unmarshal(body, &parsed); err != nil {
				return backoff.Permanent(errors.Wrap(err, "decoding VIES response"))
			}
			return nil
		case resp.StatusCode >= http.StatusInternalServerError:
			// Transient upstream failure; retry.
			return errors.Errorf("VIES returned status %d", resp.StatusCode)
		default:
			return backoff.Permanent(errors.Errorf("VIES returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
		}
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	result := &responses.VATValidationResult{Valid: parsed.IsValid}
	if parsed.IsValid {
		result.Company = &responses.VATCompany{
			Name:    strings.TrimSpace(parsed.Name),
			Address: strings.TrimSpace(parsed.Address),
		}
	}
	return result, nil
}
