package unify

import (
	"fmt"
	"strings"

	"github.com/spendview-dev/spendview/internal/model"
)

// ValidationError describes a single invariant violation in the unified
// table.
type ValidationError struct {
	Row         int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Description)
}

// Validate enforces the unified-table invariants. It returns one error
// per violation; an empty slice means the table is sound.
func Validate(rows []model.UnifiedTransaction) []ValidationError {
	var errs []ValidationError
	for i, u := range rows {
		if _, ok := model.ParseTxnType(string(u.Type)); !ok {
			errs = append(errs, ValidationError{Row: i, Description: fmt.Sprintf("unknown type %q", u.Type)})
		}

		if u.Debit.IsNegative() || u.Credit.IsNegative() {
			errs = append(errs, ValidationError{Row: i, Description: "negative debit or credit amount"})
		}

		// At most one side carries the amount; both zero only when the
		// amount itself is zero.
		if u.Debit.IsPositive() && u.Credit.IsPositive() {
			errs = append(errs, ValidationError{Row: i, Description: "both debit and credit set"})
		}

		if u.Type.IsDebit() && u.Credit.IsPositive() {
			errs = append(errs, ValidationError{Row: i, Description: fmt.Sprintf("credit amount on debit type %s", u.Type)})
		}
		if u.Type.IsCredit() && u.Debit.IsPositive() {
			errs = append(errs, ValidationError{Row: i, Description: fmt.Sprintf("debit amount on credit type %s", u.Type)})
		}

		if u.Type == model.TypeAdjustment {
			if u.Counterparty != model.CounterpartyAdjustments || u.Category != model.CategoryAdjustment {
				errs = append(errs, ValidationError{Row: i, Description: "adjustment row missing its fixed counterparty/category"})
			}
		}

		if u.HasTime() {
			if u.Month != strings.ToUpper(u.Time.Format("Jan")) || u.Year != u.Time.Format("2006") {
				errs = append(errs, ValidationError{Row: i, Description: "derived month/year out of sync with timestamp"})
			}
		} else if u.Month != "" || u.Year != "" {
			errs = append(errs, ValidationError{Row: i, Description: "derived month/year present without timestamp"})
		}
	}
	return errs
}
