package cache

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type cachedRate struct {
	rate      decimal.Decimal
	timestamp time.Time
}

// RateCache keeps conversion rates for at most one TTL. Rates are never
// persisted; an expired entry simply forces a fresh fetch.
type RateCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	rates map[string]cachedRate
}

func NewRateCache(ttl time.Duration) *RateCache {
	return &RateCache{
		ttl:   ttl,
		rates: make(map[string]cachedRate),
	}
}

// Get returns the cached rate for key, or false when absent or stale.
func (c *RateCache) Get(key string) (decimal.Decimal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.rates[key]
	if !ok {
		return decimal.Decimal{}, false
	}
	if time.Since(entry.timestamp) > c.ttl {
		return decimal.Decimal{}, false
	}

	logrus.Infof("rate cache hit for %s", key)
	return entry.rate, true
}

func (c *RateCache) Set(key string, rate decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rates[key] = cachedRate{
		rate:      rate,
		timestamp: time.Now(),
	}

	logrus.Infof("rate cached for %s", key)
}
