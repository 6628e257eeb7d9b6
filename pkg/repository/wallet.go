package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"spot_trading_back/models"
)

var (
	ErrWalletNotFound = errors.New("wallet not found")
	ErrWalletExists   = errors.New("wallet already exists for currency")

	// ErrBalanceConflict means the balance observed by the caller no longer
	// matches the stored one; the write did not apply.
	ErrBalanceConflict = errors.New("wallet balance changed since it was read")
)

const uniqueViolation = "23505"

type WalletPostgres struct {
	db *sqlx.DB
}

func NewWalletPostgres(db *sqlx.DB) *WalletPostgres {
	return &WalletPostgres{db: db}
}

func (r *WalletPostgres) List() ([]models.Wallet, error) {
	var wallets []models.Wallet
	err := r.db.Select(&wallets, "SELECT id, currency_id, balance, updated_at FROM wallets ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, "list wallets")
	}
	return wallets, nil
}

func (r *WalletPostgres) GetByCurrency(currencyID int64) (models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Get(&wallet,
		"SELECT id, currency_id, balance, updated_at FROM wallets WHERE currency_id=$1", currencyID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Wallet{}, ErrWalletNotFound
	}
	if err != nil {
		return models.Wallet{}, errors.Wrap(err, "get wallet by currency")
	}
	return wallet, nil
}

func (r *WalletPostgres) Create(currencyID int64, balance decimal.Decimal) (models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Get(&wallet,
		`INSERT INTO wallets (currency_id, balance, updated_at) VALUES ($1, $2, now())
		 RETURNING id, currency_id, balance, updated_at`,
		currencyID, balance)
	if pqErr, ok := errors.Cause(err).(*pq.Error); ok && pqErr.Code == uniqueViolation {
		return models.Wallet{}, ErrWalletExists
	}
	if err != nil {
		return models.Wallet{}, errors.Wrap(err, "create wallet")
	}
	return wallet, nil
}

// UpdateBalance overwrites the wallet balance as a compare-and-set: the
// update only applies while the stored balance still equals observed. The
// caller must have loaded the wallet first, so a missing row here means the
// observed value went stale, not that the wallet disappeared.
func (r *WalletPostgres) UpdateBalance(walletID int64, observed, next decimal.Decimal) (models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Get(&wallet,
		`UPDATE wallets SET balance=$1, updated_at=now() WHERE id=$2 AND balance=$3
		 RETURNING id, currency_id, balance, updated_at`,
		next, walletID, observed)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Wallet{}, ErrBalanceConflict
	}
	if err != nil {
		return models.Wallet{}, errors.Wrap(err, "update wallet balance")
	}
	return wallet, nil
}
