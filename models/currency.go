package models

// Currency is one entry of the externally sourced catalog. Immutable once
// loaded; every other record refers to it by id, never by symbol.
type Currency struct {
	ID     int64  `db:"id" json:"id"`
	Symbol string `db:"symbol" json:"symbol"`
	Name   string `db:"name" json:"name"`
}

// ReferenceSymbol is the fixed quote currency every trade settles against.
const ReferenceSymbol = "USDT"
