package normalize

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/spendview-dev/spendview/internal/model"
	"github.com/spendview-dev/spendview/internal/table"
	"github.com/spendview-dev/spendview/internal/textutil"
)

// Logical column aliases for the balance-activity export, in priority order.
var (
	balanceTypeCols   = []string{"Financial Transaction Type"}
	balanceTimeCols   = []string{"Time", "Created At"}
	balanceDescCols   = []string{"Description", "Reference"}
	balanceTxnCols    = []string{"Transaction Id", "Request Id"}
	balanceAmountCols = []string{"Amount"}
)

// Balance converts a balance-activity export into unified rows. Rows whose
// transaction type falls outside the balance set of deposit, card refund,
// payout and adjustment are discarded, not errors.
// Missing type or amount columns are fatal for the file; anything else
// degrades per cell.
func Balance(t *table.Table, log zerolog.Logger) ([]model.UnifiedTransaction, error) {
	typeIdx := t.ResolveIndex(balanceTypeCols...)
	amountIdx := t.ResolveIndex(balanceAmountCols...)

	var missing []string
	if typeIdx < 0 {
		missing = append(missing, balanceTypeCols[0])
	}
	if amountIdx < 0 {
		missing = append(missing, balanceAmountCols[0])
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Source: "balance export", Columns: missing}
	}

	timeIdx := t.ResolveIndex(balanceTimeCols...)
	descIdx := t.ResolveIndex(balanceDescCols...)
	txnIdx := t.ResolveIndex(balanceTxnCols...)

	var out []model.UnifiedTransaction
	for i := 0; i < t.Len(); i++ {
		typ, ok := model.ParseTxnType(t.Cell(i, typeIdx))
		// CARD rows belong to the card-expense export; a balance export
		// only carries DEPOSIT, CARD_REFUND, PAYOUT and ADJUSTMENT.
		if !ok || typ == model.TypeCard {
			log.Debug().Int("row", i).Str("type", string(typ)).Msg("skipping balance row with unhandled type")
			continue
		}

		amount := textutil.CleanNumber(t.Cell(i, amountIdx))

		counterparty := ""
		if name, found := textutil.ExtractCounterparty(t.Cell(i, descIdx)); found {
			counterparty = name
		}

		u := model.UnifiedTransaction{
			TransactionID: strings.TrimSpace(t.Cell(i, txnIdx)),
			Type:          typ,
			Time:          parseTimestamp(t.Cell(i, timeIdx)),
			Amount:        amount,
			Counterparty:  counterparty,
		}
		if u.Time.IsZero() && timeIdx >= 0 {
			log.Debug().Int("row", i).Str("time", t.Cell(i, timeIdx)).Msg("unparseable balance timestamp")
		}

		switch typ {
		case model.TypePayout:
			u.Category = model.CategoryTransfers
		case model.TypeAdjustment:
			u.Category = model.CategoryAdjustment
		}

		if typ.IsDebit() {
			u.Debit = amount
			u.Credit = decimal.Zero
		} else {
			u.Credit = amount
			u.Debit = decimal.Zero
		}

		out = append(out, u)
	}
	return out, nil
}
