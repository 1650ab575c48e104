// Package unify merges normalized source sets into the single unified
// transaction table and enforces its invariants.
package unify

import (
	"sort"
	"strings"
	"time"

	"github.com/spendview-dev/spendview/internal/model"
	"github.com/spendview-dev/spendview/internal/textutil"
)

// Merge concatenates normalized sets in order and re-derives dependent
// fields. Input row order is preserved so rows stay correlatable with
// their source tables.
func Merge(sets ...[]model.UnifiedTransaction) []model.UnifiedTransaction {
	var all []model.UnifiedTransaction
	for _, s := range sets {
		all = append(all, s...)
	}
	return Rederive(all)
}

// Rederive recomputes every dependent field from its source of truth.
// It is a fixed point: feeding its output back through produces an
// identical table.
func Rederive(rows []model.UnifiedTransaction) []model.UnifiedTransaction {
	out := make([]model.UnifiedTransaction, len(rows))
	for i, u := range rows {
		u.Type = model.TxnType(strings.ToUpper(strings.TrimSpace(string(u.Type))))
		u.Counterparty = textutil.DisplayName(u.Counterparty)
		u.Category = strings.TrimSpace(u.Category)

		if u.Type == model.TypeCard {
			// Placeholder text from upstream tooling is not a category.
			if strings.EqualFold(u.Category, "nan") || strings.EqualFold(u.Category, "none") {
				u.Category = ""
			}
			if u.Category == "" && strings.EqualFold(strings.TrimSpace(u.ExpenseStatus), model.StatusIncomplete) {
				u.Category = model.CategoryIncomplete
			}
		}

		// Adjustments override whatever the source carried.
		if u.Type == model.TypeAdjustment {
			u.Counterparty = model.CounterpartyAdjustments
			u.Category = model.CategoryAdjustment
		}

		if u.HasTime() {
			u.Month = strings.ToUpper(u.Time.Format("Jan"))
			u.Year = u.Time.Format("2006")
			u.MonthYear = time.Date(u.Time.Year(), u.Time.Month(), 1, 0, 0, 0, 0, time.UTC)
		} else {
			u.Month = ""
			u.Year = ""
			u.MonthYear = time.Time{}
		}

		// Safety net: classify amounts only when both sides are exactly
		// zero. A row with one side already set is never touched, and an
		// unknown type keeps zero on both sides.
		if u.Debit.IsZero() && u.Credit.IsZero() {
			switch {
			case u.Type.IsDebit():
				u.Debit = u.Amount
			case u.Type.IsCredit():
				u.Credit = u.Amount
			}
		}

		out[i] = u
	}
	return out
}

// SortByTime orders rows by timestamp ascending, rows without a
// timestamp last. The sort is stable so source order breaks ties.
func SortByTime(rows []model.UnifiedTransaction) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.HasTime() != b.HasTime() {
			return a.HasTime()
		}
		return a.Time.Before(b.Time)
	})
}
