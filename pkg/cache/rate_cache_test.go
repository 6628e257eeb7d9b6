package cache

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateCacheGetSet(t *testing.T) {
	c := NewRateCache(time.Minute)

	_, ok := c.Get("bitcoin_usdt")
	assert.False(t, ok)

	c.Set("bitcoin_usdt", decimal.RequireFromString("65000.12"))

	rate, ok := c.Get("bitcoin_usdt")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("65000.12")))

	_, ok = c.Get("ethereum_usdt")
	assert.False(t, ok)
}

func TestRateCacheExpiry(t *testing.T) {
	c := NewRateCache(10 * time.Millisecond)

	c.Set("bitcoin_usdt", decimal.NewFromInt(100))
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get("bitcoin_usdt")
	assert.False(t, ok)
}
