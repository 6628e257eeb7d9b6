package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"spot_trading_back/models"
	"spot_trading_back/pkg/repository"
)

// Rejection reasons surfaced on a trade receipt.
const (
	ReasonInvalidTrade        = "invalid trade"
	ReasonUnknownCurrency     = "unknown currency"
	ReasonNoSourceWallet      = "no source wallet"
	ReasonInsufficientBalance = "insufficient balance"
	ReasonNotApplied          = "trade could not be applied"
)

// TradeCoordinator validates one trade and applies the three-way ledger
// mutation: credit (or lazily create) the destination wallet, debit the
// source wallet, append the transaction record. The stores are independent
// request/response collaborators, so the mutation is a saga of compensable
// steps rather than a database transaction: a failed step reverses the
// wallet writes already made, best-effort, and the trade reports failed.
// Not safe for concurrent calls within one session; cross-session races on
// a wallet surface as balance conflicts, not lost updates.
type TradeCoordinator struct {
	currencies   repository.Currency
	wallets      repository.Wallet
	transactions repository.Transaction
	rates        Rates
}

func NewTradeCoordinator(currencies repository.Currency, wallets repository.Wallet, transactions repository.Transaction, rates Rates) *TradeCoordinator {
	return &TradeCoordinator{
		currencies:   currencies,
		wallets:      wallets,
		transactions: transactions,
		rates:        rates,
	}
}

// Execute runs one trade to its final receipt. Rejections are not errors:
// the receipt carries the human-readable reason and no write has happened.
// The error is non-nil only alongside a failed receipt and carries the
// underlying cause for the caller's logs.
func (c *TradeCoordinator) Execute(req models.TradeRequest, rate decimal.Decimal) (models.TradeReceipt, error) {
	receipt := models.TradeReceipt{
		TradeID: uuid.NewString(),
		Status:  models.TradeValidating,
	}

	if !req.Amount.IsPositive() || !rate.IsPositive() || strings.EqualFold(req.CurrencyFrom, req.CurrencyTo) {
		return c.reject(receipt, ReasonInvalidTrade), nil
	}

	// Every trade settles against the reference currency; exactly one side
	// of the pair must be it.
	if !strings.EqualFold(req.CurrencyFrom, models.ReferenceSymbol) &&
		!strings.EqualFold(req.CurrencyTo, models.ReferenceSymbol) {
		return c.reject(receipt, ReasonInvalidTrade), nil
	}

	from, err := c.currencies.GetBySymbol(req.CurrencyFrom)
	if errors.Is(err, repository.ErrCurrencyNotFound) {
		return c.reject(receipt, ReasonUnknownCurrency), nil
	}
	if err != nil {
		return c.fail(receipt, err)
	}

	to, err := c.currencies.GetBySymbol(req.CurrencyTo)
	if errors.Is(err, repository.ErrCurrencyNotFound) {
		return c.reject(receipt, ReasonUnknownCurrency), nil
	}
	if err != nil {
		return c.fail(receipt, err)
	}

	source, err := c.wallets.GetByCurrency(from.ID)
	if errors.Is(err, repository.ErrWalletNotFound) {
		return c.reject(receipt, ReasonNoSourceWallet), nil
	}
	if err != nil {
		return c.fail(receipt, err)
	}

	if source.Balance.LessThan(req.Amount) {
		return c.reject(receipt, ReasonInsufficientBalance), nil
	}

	sellingTraded := !strings.EqualFold(req.CurrencyFrom, models.ReferenceSymbol)
	settled := Settle(req.Amount, rate, sellingTraded)

	receipt.Status = models.TradeApplying

	credited, err := c.creditDestination(to.ID, settled)
	if err != nil {
		return c.fail(receipt, err)
	}

	// Debit against the balance observed at the check, so a concurrent trade
	// that moved it fails the compare-and-set instead of losing an update.
	debited, err := c.wallets.UpdateBalance(source.ID, source.Balance, source.Balance.Sub(req.Amount))
	if err != nil {
		c.reverseCredit(credited, settled)
		return c.fail(receipt, err)
	}

	created, err := c.transactions.Create(models.Transaction{
		TransactionType: models.TransactionTypeConversion,
		Amount:          req.Amount,
		TotalValue:      settled,
		CurrencyFromID:  from.ID,
		CurrencyToID:    to.ID,
		ExchangeRate:    rate,
		WalletID:        credited.ID,
	})
	if err != nil {
		c.reverseDebit(debited, req.Amount)
		c.reverseCredit(credited, settled)
		return c.fail(receipt, err)
	}

	receipt.Status = models.TradeApplied
	receipt.Transaction = &created
	receipt.SourceWallet = &debited
	receipt.DestinationWallet = &credited
	logrus.Infof("trade %s applied: %s %s -> %s %s at rate %s",
		receipt.TradeID, req.Amount, from.Symbol, settled, to.Symbol, rate)
	return receipt, nil
}

// Quote re-derives the settled amount preview from the raw form state,
// fetching the traded symbol's rate fresh. An unavailable rate or invalid
// amount yields an empty total, never an error.
func (c *TradeCoordinator) Quote(req models.QuoteRequest) (models.QuoteResponse, error) {
	rate, err := c.rates.GetConversionRate(req.Symbol)
	rateKnown := err == nil
	if err != nil {
		logrus.Infof("quote for %s pending: %s", req.Symbol, err)
	}

	sellingTraded := strings.EqualFold(req.CurrencyFrom, req.Symbol)
	total, ok := SettleFromInput(req.Amount, rate, rateKnown, sellingTraded)
	if !ok {
		return models.QuoteResponse{}, nil
	}

	return models.QuoteResponse{
		TotalValue:   total.StringFixed(settledPlaces),
		ExchangeRate: rate.String(),
	}, nil
}

// Transactions returns the conversion history, newest first, optionally
// narrowed to trades touching one symbol.
func (c *TradeCoordinator) Transactions(symbol string) ([]models.Transaction, error) {
	list, err := c.transactions.List()
	if err != nil {
		return nil, err
	}
	if symbol == "" {
		return list, nil
	}

	currency, err := c.currencies.GetBySymbol(symbol)
	if errors.Is(err, repository.ErrCurrencyNotFound) {
		return []models.Transaction{}, nil
	}
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Transaction, 0, len(list))
	for _, tx := range list {
		if tx.CurrencyFromID == currency.ID || tx.CurrencyToID == currency.ID {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

// creditDestination adds the settled amount to the destination wallet,
// creating it lazily when the currency has never been held.
func (c *TradeCoordinator) creditDestination(currencyID int64, settled decimal.Decimal) (models.Wallet, error) {
	destination, err := c.wallets.GetByCurrency(currencyID)
	if errors.Is(err, repository.ErrWalletNotFound) {
		return c.wallets.Create(currencyID, settled)
	}
	if err != nil {
		return models.Wallet{}, err
	}
	return c.wallets.UpdateBalance(destination.ID, destination.Balance, destination.Balance.Add(settled))
}

// reverseCredit and reverseDebit are the compensating writes of the saga.
// Best-effort: a failed reversal is logged and the trade still reports
// failed with the original cause.
func (c *TradeCoordinator) reverseCredit(wallet models.Wallet, settled decimal.Decimal) {
	if _, err := c.wallets.UpdateBalance(wallet.ID, wallet.Balance, wallet.Balance.Sub(settled)); err != nil {
		logrus.Errorf("failed to reverse credit on wallet %d: %s", wallet.ID, err)
	}
}

func (c *TradeCoordinator) reverseDebit(wallet models.Wallet, amount decimal.Decimal) {
	if _, err := c.wallets.UpdateBalance(wallet.ID, wallet.Balance, wallet.Balance.Add(amount)); err != nil {
		logrus.Errorf("failed to reverse debit on wallet %d: %s", wallet.ID, err)
	}
}

func (c *TradeCoordinator) reject(receipt models.TradeReceipt, reason string) models.TradeReceipt {
	receipt.Status = models.TradeRejected
	receipt.Reason = reason
	logrus.Infof("trade %s rejected: %s", receipt.TradeID, reason)
	return receipt
}

func (c *TradeCoordinator) fail(receipt models.TradeReceipt, err error) (models.TradeReceipt, error) {
	receipt.Status = models.TradeFailed
	receipt.Reason = ReasonNotApplied
	logrus.Errorf("trade %s failed: %s", receipt.TradeID, err)
	return receipt, err
}
