package models

import "github.com/shopspring/decimal"

// TradeStatus is the lifecycle of one submitted trade.
type TradeStatus string

const (
	TradePending    TradeStatus = "pending"
	TradeValidating TradeStatus = "validating"
	TradeRejected   TradeStatus = "rejected"
	TradeApplying   TradeStatus = "applying"
	TradeApplied    TradeStatus = "applied"
	TradeFailed     TradeStatus = "failed"
)

// TradeRequest is the ephemeral intent to convert between two currencies.
// The exchange rate is supplied separately by the caller, fetched fresh for
// the traded symbol at submission time.
type TradeRequest struct {
	CurrencyFrom string          `json:"currency_from" binding:"required"`
	CurrencyTo   string          `json:"currency_to" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
}

// TradeReceipt is the discriminated outcome of a trade. Transaction and the
// wallet snapshots are set only when Status is applied; Reason only when it
// is rejected or failed.
type TradeReceipt struct {
	TradeID           string       `json:"trade_id"`
	Status            TradeStatus  `json:"status"`
	Reason            string       `json:"reason,omitempty"`
	Transaction       *Transaction `json:"transaction,omitempty"`
	SourceWallet      *Wallet      `json:"source_wallet,omitempty"`
	DestinationWallet *Wallet      `json:"destination_wallet,omitempty"`
}

// QuoteRequest carries the raw form state: the page's traded symbol, the
// selected source currency, and the amount exactly as typed. Amount stays a
// string so an empty or non-numeric input is a pending state, not a bind
// failure.
type QuoteRequest struct {
	Symbol       string `json:"symbol" binding:"required"`
	CurrencyFrom string `json:"currency_from" binding:"required"`
	Amount       string `json:"amount"`
}

// QuoteResponse mirrors the derived form field: TotalValue is the settled
// amount with eight fractional digits, or "" while any input is invalid or
// the rate is unknown.
type QuoteResponse struct {
	TotalValue   string `json:"total_value"`
	ExchangeRate string `json:"exchange_rate,omitempty"`
}
