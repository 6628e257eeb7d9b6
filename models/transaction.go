package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const TransactionTypeConversion = "CONVERSION"

// Transaction is the durable audit record of one applied trade. Append-only:
// nothing in this service updates or deletes a row once written. WalletID
// references the destination wallet of the conversion.
type Transaction struct {
	ID              int64           `db:"id" json:"id"`
	TransactionType string          `db:"transaction_type" json:"transaction_type"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	TotalValue      decimal.Decimal `db:"total_value" json:"total_value"`
	CurrencyFromID  int64           `db:"currency_from_id" json:"currency_from"`
	CurrencyToID    int64           `db:"currency_to_id" json:"currency_to"`
	ExchangeRate    decimal.Decimal `db:"exchange_rate" json:"exchange_rate"`
	WalletID        int64           `db:"wallet_id" json:"wallet"`
	CreatedAt       time.Time       `db:"created_at" json:"date"`
}
