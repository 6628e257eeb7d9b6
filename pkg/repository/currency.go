package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"spot_trading_back/models"
)

var ErrCurrencyNotFound = errors.New("currency not found")

type CurrencyPostgres struct {
	db *sqlx.DB
}

func NewCurrencyPostgres(db *sqlx.DB) *CurrencyPostgres {
	return &CurrencyPostgres{db: db}
}

func (r *CurrencyPostgres) List() ([]models.Currency, error) {
	var currencies []models.Currency
	err := r.db.Select(&currencies, "SELECT id, symbol, name FROM currencies ORDER BY symbol")
	if err != nil {
		return nil, errors.Wrap(err, "list currencies")
	}
	return currencies, nil
}

func (r *CurrencyPostgres) GetByID(id int64) (models.Currency, error) {
	var currency models.Currency
	err := r.db.Get(&currency, "SELECT id, symbol, name FROM currencies WHERE id=$1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Currency{}, ErrCurrencyNotFound
	}
	if err != nil {
		return models.Currency{}, errors.Wrap(err, "get currency by id")
	}
	return currency, nil
}

func (r *CurrencyPostgres) GetBySymbol(symbol string) (models.Currency, error) {
	var currency models.Currency
	err := r.db.Get(&currency, "SELECT id, symbol, name FROM currencies WHERE UPPER(symbol)=UPPER($1)", symbol)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Currency{}, ErrCurrencyNotFound
	}
	if err != nil {
		return models.Currency{}, errors.Wrap(err, "get currency by symbol")
	}
	return currency, nil
}
