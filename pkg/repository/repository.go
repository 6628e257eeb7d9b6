package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"spot_trading_back/models"
)

type Currency interface {
	List() ([]models.Currency, error)
	GetByID(id int64) (models.Currency, error)
	GetBySymbol(symbol string) (models.Currency, error)
}

type Wallet interface {
	List() ([]models.Wallet, error)
	GetByCurrency(currencyID int64) (models.Wallet, error)
	Create(currencyID int64, balance decimal.Decimal) (models.Wallet, error)
	UpdateBalance(walletID int64, observed, next decimal.Decimal) (models.Wallet, error)
}

type Transaction interface {
	Create(tx models.Transaction) (models.Transaction, error)
	List() ([]models.Transaction, error)
}

type Repository struct {
	Currency
	Wallet
	Transaction
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Currency:    NewCurrencyPostgres(db),
		Wallet:      NewWalletPostgres(db),
		Transaction: NewTransactionPostgres(db),
	}
}
