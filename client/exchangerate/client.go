package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.exchangerate.host"
	defaultTimeout = 5 * time.Second
)

// Client fetches fiat exchange rates from the exchangerate.host API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates an exchange rate API client with a bounded request
// timeout.
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

// latestResponse matches the /latest payload shape.
type latestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// APIError is a non-2xx response from the rate API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("exchange rate API error: status %d: %s", e.StatusCode, e.Body)
}

// FetchRates returns rates for the requested symbols relative to base.
// With no symbols the full rate table for the base is returned.
func (c *Client) FetchRates(ctx context.Context, base string, symbols []string) (map[string]float64, error) {
	if base == "" {
		return nil, errors.New("base currency is required")
	}

	query := url.Values{}
	query.Set("base", strings.ToUpper(base))
	if len(symbols) > 0 {
		query.Set("symbols", strings.ToUpper(strings.Join(symbols, ",")))
	}

	endpoint := c.baseURL + "/latest?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building exchange rate request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching exchange rates")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "reading exchange rate response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var parsed latestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "decoding exchange rate response")
	}
	if len(parsed.Rates) == 0 {
		return nil, errors.Errorf("exchange rate API returned no rates for base %s", base)
	}

	return parsed.Rates, nil
}
