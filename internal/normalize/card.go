package normalize

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/spendview-dev/spendview/internal/model"
	"github.com/spendview-dev/spendview/internal/table"
	"github.com/spendview-dev/spendview/internal/textutil"
)

// Logical column aliases for the card-expense export, in priority order.
var (
	cardTimeCols     = []string{"Transaction timestamp UTC", "Time", "Created At"}
	cardEmployeeCols = []string{"Employee(s)", "Employee", "User"}
	cardTxnCols      = []string{"Transaction Id", "Request Id"}
	cardAmountCols   = []string{"Billing amount", "Amount"}
	cardCategoryCols = []string{"Expense category", "Category"}
	cardStatusCols   = []string{"Expense status", "Status"}
)

// Card converts a card-expense export into unified rows. Every row is a
// CARD debit. A missing billing-amount column is fatal for the file.
func Card(t *table.Table, log zerolog.Logger) ([]model.UnifiedTransaction, error) {
	amountIdx := t.ResolveIndex(cardAmountCols...)
	if amountIdx < 0 {
		return nil, &MissingColumnError{Source: "expense export", Columns: []string{cardAmountCols[0]}}
	}

	timeIdx := t.ResolveIndex(cardTimeCols...)
	employeeIdx := t.ResolveIndex(cardEmployeeCols...)
	txnIdx := t.ResolveIndex(cardTxnCols...)
	categoryIdx := t.ResolveIndex(cardCategoryCols...)
	statusIdx := t.ResolveIndex(cardStatusCols...)

	var out []model.UnifiedTransaction
	for i := 0; i < t.Len(); i++ {
		amount := textutil.CleanNumber(t.Cell(i, amountIdx))

		u := model.UnifiedTransaction{
			TransactionID: strings.TrimSpace(t.Cell(i, txnIdx)),
			Type:          model.TypeCard,
			Time:          parseTimestamp(t.Cell(i, timeIdx)),
			Amount:        amount,
			Counterparty:  firstEmployee(t.Cell(i, employeeIdx)),
			Category:      strings.TrimSpace(t.Cell(i, categoryIdx)),
			ExpenseStatus: t.Cell(i, statusIdx),
			Debit:         amount,
			Credit:        decimal.Zero,
		}
		if u.Time.IsZero() && timeIdx >= 0 {
			log.Debug().Int("row", i).Str("time", t.Cell(i, timeIdx)).Msg("unparseable expense timestamp")
		}
		out = append(out, u)
	}
	return out, nil
}

// firstEmployee takes the first comma-separated token of an
// "Employee(s)" field.
func firstEmployee(s string) string {
	return strings.TrimSpace(strings.SplitN(s, ",", 2)[0])
}
