package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"spot_trading_back/models"
)

type TransactionPostgres struct {
	db *sqlx.DB
}

func NewTransactionPostgres(db *sqlx.DB) *TransactionPostgres {
	return &TransactionPostgres{db: db}
}

// Create appends one record to the ledger. There is no update or delete
// counterpart anywhere in this package.
func (r *TransactionPostgres) Create(tx models.Transaction) (models.Transaction, error) {
	var created models.Transaction
	err := r.db.Get(&created,
		`INSERT INTO transactions
		   (transaction_type, amount, total_value, currency_from_id, currency_to_id, exchange_rate, wallet_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		 RETURNING id, transaction_type, amount, total_value, currency_from_id, currency_to_id, exchange_rate, wallet_id, created_at`,
		tx.TransactionType, tx.Amount, tx.TotalValue, tx.CurrencyFromID, tx.CurrencyToID, tx.ExchangeRate, tx.WalletID)
	if err != nil {
		return models.Transaction{}, errors.Wrap(err, "create transaction")
	}
	return created, nil
}

func (r *TransactionPostgres) List() ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.Select(&transactions,
		`SELECT id, transaction_type, amount, total_value, currency_from_id, currency_to_id, exchange_rate, wallet_id, created_at
		 FROM transactions ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}
	return transactions, nil
}
