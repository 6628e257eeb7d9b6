package service

import (
	"github.com/shopspring/decimal"

	"spot_trading_back/models"
	"spot_trading_back/pkg/repository"
)

type Currency interface {
	List() ([]models.Currency, error)
	GetBySymbol(symbol string) (models.Currency, error)
}

type Wallet interface {
	List() ([]models.Wallet, error)
	GetByCurrency(currencyID int64) (models.Wallet, error)
	Create(input models.CreateWalletInput) (models.Wallet, error)
}

type Rates interface {
	GetConversionRate(symbol string) (decimal.Decimal, error)
}

type Trade interface {
	Quote(req models.QuoteRequest) (models.QuoteResponse, error)
	Execute(req models.TradeRequest, rate decimal.Decimal) (models.TradeReceipt, error)
	Transactions(symbol string) ([]models.Transaction, error)
}

type Service struct {
	Currency
	Wallet
	Rates
	Trade
}

func NewService(repos *repository.Repository, rates Rates) *Service {
	return &Service{
		Currency: NewCurrencyService(repos.Currency),
		Wallet:   NewWalletService(repos.Wallet),
		Rates:    rates,
		Trade:    NewTradeCoordinator(repos.Currency, repos.Wallet, repos.Transaction, rates),
	}
}
