package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spot_trading_back/models"
	"spot_trading_back/pkg/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRates struct {
	rate decimal.Decimal
	err  error

	lastSymbol string
}

func (s *stubRates) GetConversionRate(symbol string) (decimal.Decimal, error) {
	s.lastSymbol = symbol
	if s.err != nil {
		return decimal.Decimal{}, s.err
	}
	return s.rate, nil
}

type stubTrade struct {
	receipt models.TradeReceipt
	quote   models.QuoteResponse

	lastRate decimal.Decimal
}

func (s *stubTrade) Quote(req models.QuoteRequest) (models.QuoteResponse, error) {
	return s.quote, nil
}

func (s *stubTrade) Execute(req models.TradeRequest, rate decimal.Decimal) (models.TradeReceipt, error) {
	s.lastRate = rate
	return s.receipt, nil
}

func (s *stubTrade) Transactions(symbol string) ([]models.Transaction, error) {
	return []models.Transaction{}, nil
}

type stubCurrencies struct {
	currencies []models.Currency
}

func (s *stubCurrencies) List() ([]models.Currency, error) {
	return s.currencies, nil
}

func (s *stubCurrencies) GetBySymbol(symbol string) (models.Currency, error) {
	return models.Currency{}, nil
}

func serve(services *service.Service, method, target, body string) *httptest.ResponseRecorder {
	router := NewHandler(services).InitRoute()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestTradeApplied(t *testing.T) {
	rates := &stubRates{rate: decimal.NewFromInt(2)}
	trade := &stubTrade{receipt: models.TradeReceipt{TradeID: "t1", Status: models.TradeApplied}}
	services := &service.Service{Rates: rates, Trade: trade}

	w := serve(services, http.MethodPost, "/api/spot/trade",
		`{"currency_from":"USDT","currency_to":"BTC","amount":100}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"applied"`)
	assert.Equal(t, "BTC", rates.lastSymbol, "rate must be fetched for the traded symbol")
	assert.True(t, trade.lastRate.Equal(decimal.NewFromInt(2)))
}

func TestTradeFetchesRateForTradedSideWhenSelling(t *testing.T) {
	rates := &stubRates{rate: decimal.NewFromInt(2)}
	trade := &stubTrade{receipt: models.TradeReceipt{Status: models.TradeApplied}}
	services := &service.Service{Rates: rates, Trade: trade}

	serve(services, http.MethodPost, "/api/spot/trade",
		`{"currency_from":"BTC","currency_to":"USDT","amount":3}`)

	assert.Equal(t, "BTC", rates.lastSymbol)
}

func TestTradeRejected(t *testing.T) {
	rates := &stubRates{rate: decimal.NewFromInt(2)}
	trade := &stubTrade{receipt: models.TradeReceipt{
		Status: models.TradeRejected,
		Reason: service.ReasonInsufficientBalance,
	}}
	services := &service.Service{Rates: rates, Trade: trade}

	w := serve(services, http.MethodPost, "/api/spot/trade",
		`{"currency_from":"BTC","currency_to":"USDT","amount":15}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient balance")
}

func TestTradeRateUnavailable(t *testing.T) {
	services := &service.Service{
		Rates: &stubRates{err: assert.AnError},
		Trade: &stubTrade{},
	}

	w := serve(services, http.MethodPost, "/api/spot/trade",
		`{"currency_from":"USDT","currency_to":"BTC","amount":100}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestTradeInvalidBody(t *testing.T) {
	services := &service.Service{Rates: &stubRates{}, Trade: &stubTrade{}}

	w := serve(services, http.MethodPost, "/api/spot/trade", `{"amount":100}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteEndpoint(t *testing.T) {
	trade := &stubTrade{quote: models.QuoteResponse{TotalValue: "50.00000000"}}
	services := &service.Service{Trade: trade}

	w := serve(services, http.MethodPost, "/api/spot/quote",
		`{"symbol":"BTC","currency_from":"USDT","amount":"100"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "50.00000000")
}

func TestListCurrencies(t *testing.T) {
	services := &service.Service{
		Currency: &stubCurrencies{currencies: []models.Currency{
			{ID: 1, Symbol: "USDT", Name: "Tether"},
			{ID: 2, Symbol: "BTC", Name: "Bitcoin"},
		}},
	}

	w := serve(services, http.MethodGet, "/api/currencies", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"symbol":"BTC"`)
}
