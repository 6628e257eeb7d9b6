package rateclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spot_trading_back/pkg/cache"
)

func TestGetConversionRate(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "usdt", r.URL.Query().Get("vs_currencies"))
		assert.Equal(t, "test-key", r.Header.Get("x-cg-demo-api-key"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"bitcoin":{"usdt":65000.12}}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", cache.NewRateCache(time.Minute))

	rate, err := client.GetConversionRate("BTC")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("65000.12")), "got %s", rate)

	// Second fetch inside the TTL is served from the cache.
	rate, err = client.GetConversionRate("BTC")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("65000.12")))
	assert.Equal(t, 1, calls)
}

func TestGetConversionRateProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", cache.NewRateCache(time.Minute))

	_, err := client.GetConversionRate("BTC")
	assert.Error(t, err)
}

func TestGetConversionRateMissingRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"bitcoin":{}}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", cache.NewRateCache(time.Minute))

	_, err := client.GetConversionRate("BTC")
	assert.Error(t, err)
}

func TestProviderID(t *testing.T) {
	assert.Equal(t, "bitcoin", providerID("BTC"))
	assert.Equal(t, "ethereum", providerID("eth"))
	assert.Equal(t, "tether", providerID("USDT"))
	assert.Equal(t, "sol", providerID("SOL"))
}
