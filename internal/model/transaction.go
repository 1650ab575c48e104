package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TxnType classifies a unified transaction by its source semantics.
type TxnType string

const (
	TypeCard       TxnType = "CARD"
	TypeDeposit    TxnType = "DEPOSIT"
	TypeCardRefund TxnType = "CARD_REFUND"
	TypePayout     TxnType = "PAYOUT"
	TypeAdjustment TxnType = "ADJUSTMENT"
)

// IsDebit reports whether amounts of this type count as spend.
func (t TxnType) IsDebit() bool {
	switch t {
	case TypeCard, TypePayout, TypeAdjustment:
		return true
	}
	return false
}

// IsCredit reports whether amounts of this type count as inflow.
func (t TxnType) IsCredit() bool {
	switch t {
	case TypeDeposit, TypeCardRefund:
		return true
	}
	return false
}

// ParseTxnType normalizes a raw type label. ok is false for labels
// outside the known set.
func ParseTxnType(s string) (TxnType, bool) {
	t := TxnType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TypeCard, TypeDeposit, TypeCardRefund, TypePayout, TypeAdjustment:
		return t, true
	}
	return t, false
}

// UnifiedTransaction is one reconciled, classified financial event merged
// from the balance-activity and card-expense exports.
type UnifiedTransaction struct {
	TransactionID string // join key; empty = absent
	Type          TxnType
	Time          time.Time // zero = unparseable source timestamp
	Amount        decimal.Decimal
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	Counterparty  string
	Category      string // empty = no category assigned
	ExpenseStatus string // CARD rows only

	// Derived from Time, recomputed by the unifier.
	Month     string    // upper 3-letter, e.g. "MAR"
	Year      string    // e.g. "2024"
	MonthYear time.Time // first of month, zero when Time is zero
}

// HasTime reports whether the source timestamp parsed.
func (u UnifiedTransaction) HasTime() bool { return !u.Time.IsZero() }
