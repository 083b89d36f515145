package ratesapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeedURL = "https://rates.example.test/latest"

func newTestClient() *Client {
	c := NewClient(testFeedURL, "test-key")
	httpmock.ActivateNonDefault(c.httpClient)
	return c
}

func TestFetchDailyRates_Success(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, testFeedURL,
		httpmock.NewStringResponder(200, `{"base":"NZD","rates":{"WST":2.15,"TOP":1.45,"FJD":1.36}}`))

	fetched, err := c.FetchDailyRates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2.15", fetched.RateWST.String())
	assert.Equal(t, "1.45", fetched.RateTOP.String())
	assert.Equal(t, "1.36", fetched.RateFJD.String())
	assert.Contains(t, fetched.RawResponse, `"WST":2.15`)
}

func TestFetchDailyRates_RetriesServerErrors(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	calls := 0
	httpmock.RegisterResponder(http.MethodGet, testFeedURL,
		func(req *http.Request) (*http.Response, error) {
			calls++
			if calls < 3 {
				return httpmock.NewStringResponse(503, "unavailable"), nil
			}
			return httpmock.NewStringResponse(200, `{"base":"NZD","rates":{"WST":2.1,"TOP":1.42,"FJD":1.33}}`), nil
		})

	fetched, err := c.FetchDailyRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "2.1", fetched.RateWST.String())
}

func TestFetchDailyRates_ClientErrorIsNotRetried(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	calls := 0
	httpmock.RegisterResponder(http.MethodGet, testFeedURL,
		func(req *http.Request) (*http.Response, error) {
			calls++
			return httpmock.NewStringResponse(401, "bad key"), nil
		})

	_, err := c.FetchDailyRates(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "401")
}

func TestFetchDailyRates_MissingSymbol(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, testFeedURL,
		httpmock.NewStringResponder(200, `{"base":"NZD","rates":{"WST":2.15,"TOP":1.45}}`))

	_, err := c.FetchDailyRates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FJD")
}

func TestFetchDailyRates_NonPositiveRate(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, testFeedURL,
		httpmock.NewStringResponder(200, `{"base":"NZD","rates":{"WST":0,"TOP":1.45,"FJD":1.36}}`))

	_, err := c.FetchDailyRates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive")
}

func TestFetchDailyRates_SendsAuthAndQuery(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	var gotAuth, gotBase, gotSymbols string
	httpmock.RegisterResponder(http.MethodGet, testFeedURL,
		func(req *http.Request) (*http.Response, error) {
			gotAuth = req.Header.Get("Authorization")
			gotBase = req.URL.Query().Get("base")
			gotSymbols = req.URL.Query().Get("symbols")
			return httpmock.NewStringResponse(200, `{"base":"NZD","rates":{"WST":2.1,"TOP":1.42,"FJD":1.33}}`), nil
		})

	_, err := c.FetchDailyRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "NZD", gotBase)
	assert.Equal(t, "WST,TOP,FJD", gotSymbols)
}
