package rateclient

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"spot_trading_back/pkg/cache"
)

const quoteCurrency = "usdt"

// Client fetches conversion rates from a CoinGecko style price API. Every
// rate is quoted as units of the reference currency per one unit of the
// traded symbol, valid at fetch time.
type Client struct {
	http   *resty.Client
	apiKey string
	cache  *cache.RateCache
}

func NewClient(baseURL, apiKey string, rateCache *cache.RateCache) *Client {
	return &Client{
		http:   resty.New().SetBaseURL(baseURL),
		apiKey: apiKey,
		cache:  rateCache,
	}
}

func (c *Client) GetConversionRate(symbol string) (decimal.Decimal, error) {
	key := providerID(symbol) + "_" + quoteCurrency
	if rate, ok := c.cache.Get(key); ok {
		return rate, nil
	}

	resp, err := c.http.R().
		SetHeader("x-cg-demo-api-key", c.apiKey).
		SetHeader("Accept", "application/json").
		SetQueryParam("ids", providerID(symbol)).
		SetQueryParam("vs_currencies", quoteCurrency).
		SetResult(map[string]map[string]decimal.Decimal{}).
		Get("/simple/price")
	if err != nil {
		return decimal.Decimal{}, errors.Wrap(err, "request conversion rate")
	}
	if resp.IsError() {
		return decimal.Decimal{}, errors.Errorf("rate provider returned %s", resp.Status())
	}

	data := *resp.Result().(*map[string]map[string]decimal.Decimal)
	rate := data[providerID(symbol)][quoteCurrency]
	if !rate.IsPositive() {
		return decimal.Decimal{}, errors.Errorf("no usable rate for %s", symbol)
	}

	c.cache.Set(key, rate)
	logrus.Infof("fetched conversion rate %s for %s", rate, strings.ToUpper(symbol))
	return rate, nil
}

// providerID maps an exchange symbol to the provider's coin id.
func providerID(symbol string) string {
	switch strings.ToLower(symbol) {
	case "usdt":
		return "tether"
	case "btc":
		return "bitcoin"
	case "eth":
		return "ethereum"
	default:
		return strings.ToLower(symbol)
	}
}
