package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds the balance for exactly one currency. A currency with no
// wallet row simply has balance 0; wallets are created lazily on first
// credit and never deleted.
type Wallet struct {
	ID         int64           `db:"id" json:"id"`
	CurrencyID int64           `db:"currency_id" json:"currency"`
	Balance    decimal.Decimal `db:"balance" json:"balance"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}

type CreateWalletInput struct {
	CurrencyID int64           `json:"currency" binding:"required"`
	Balance    decimal.Decimal `json:"balance"`
}
