package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a transaction as money out or money in.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// ID identifies a transaction for its session lifetime. IDs are minted by
// the ledger store, monotonically, and never reused.
type ID int64

// Transaction is a single dated, categorized money movement. Values are
// immutable once stored; an edit is modeled as remove-then-add.
type Transaction struct {
	ID       ID
	Kind     Kind
	Amount   decimal.Decimal // non-negative, at most 2 decimal places
	Date     time.Time       // midnight UTC, no time-of-day component
	Category string
	Label    string // optional display tag, never consulted for aggregation
}

// Signed returns the amount with the kind's sign applied: positive for
// income, negative for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Day normalizes a time to midnight UTC so dates compare and key maps
// consistently regardless of the wall clock they came from.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
