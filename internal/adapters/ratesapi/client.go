package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// Client fetches NZD base rates for the supported Pacific currencies from the
// configured HTTP rate feed. Transient failures (network errors, 5xx) are
// retried with exponential backoff; 4xx responses fail immediately.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a rate-feed client. baseURL is the full endpoint URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// feedResponse is the wire shape of the external feed: a base currency and a
// symbol-to-rate map.
type feedResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// FetchDailyRates calls the feed and returns the three NZD base rates plus the
// raw response payload for audit.
func (c *Client) FetchDailyRates(ctx context.Context) (*domain.FetchedRates, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to build rate feed request: %w", err))
		}
		q := req.URL.Query()
		q.Set("base", "NZD")
		q.Set("symbols", "WST,TOP,FJD")
		req.URL.RawQuery = q.Encode()
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("rate feed request failed: %w", err)
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read rate feed response: %w", err)
		}

		switch {
		case resp.StatusCode >= 500:
			return fmt.Errorf("rate feed returned %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(fmt.Errorf("rate feed returned %d", resp.StatusCode))
		}

		body = payload
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	var parsed feedResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode rate feed response: %w", err)
	}

	fetched := &domain.FetchedRates{RawResponse: string(body)}
	for symbol, dst := range map[string]*decimal.Decimal{
		"WST": &fetched.RateWST,
		"TOP": &fetched.RateTOP,
		"FJD": &fetched.RateFJD,
	} {
		value, ok := parsed.Rates[symbol]
		if !ok {
			return nil, fmt.Errorf("rate feed response missing %s rate", symbol)
		}
		if value <= 0 {
			return nil, fmt.Errorf("rate feed returned non-positive %s rate", symbol)
		}
		*dst = decimal.NewFromFloat(value)
	}

	return fetched, nil
}
