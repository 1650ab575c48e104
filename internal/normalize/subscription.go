package normalize

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/spendview-dev/spendview/internal/category"
	"github.com/spendview-dev/spendview/internal/model"
	"github.com/spendview-dev/spendview/internal/table"
	"github.com/spendview-dev/spendview/internal/textutil"
)

// Logical column aliases for subscription exports, in priority order.
var (
	subsDateCols   = []string{"Date", "Txn Date", "Transaction Date"}
	subsDescCols   = []string{"Description", "Vendor", "Details", "Narration"}
	subsAmountCols = []string{"Debit (AUD)", "Debit(AUD)", "Debit AUD", "Amount", "Amt", "Value", "Debit"}
	subsTypeCols   = []string{"Type", "Type of Subs expenses", "Subscription Type", "Subs Type", "Category", "Categories"}
	subsSourceCols = []string{"Source"}
)

// spendSource is the only Source value kept when the column is present.
const spendSource = "spend money"

// Subscriptions converts a raw subscriptions export (unknown header
// offset, arbitrary column names) into subscription records. Missing
// Date, Description or Amount columns are fatal; a missing Type column
// defaults every row's category. Bad dates and non-positive amounts drop
// individual rows.
func Subscriptions(rows [][]string, log zerolog.Logger) ([]model.SubscriptionRecord, error) {
	t := table.FromRows(rows)

	dateIdx := t.ResolveIndex(subsDateCols...)
	descIdx := t.ResolveIndex(subsDescCols...)
	amountIdx := t.ResolveIndex(subsAmountCols...)

	var missing []string
	if dateIdx < 0 {
		missing = append(missing, subsDateCols[0])
	}
	if descIdx < 0 {
		missing = append(missing, subsDescCols[0])
	}
	if amountIdx < 0 {
		missing = append(missing, subsAmountCols[0])
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Source: "subscriptions export", Columns: missing}
	}

	typeIdx := t.ResolveIndex(subsTypeCols...)
	sourceIdx := t.ResolveIndex(subsSourceCols...)

	var out []model.SubscriptionRecord
	for i := 0; i < t.Len(); i++ {
		if sourceIdx >= 0 {
			src := strings.ToLower(strings.TrimSpace(t.Cell(i, sourceIdx)))
			if src != spendSource {
				continue
			}
		}

		date, ok := parseDayFirst(t.Cell(i, dateIdx))
		if !ok {
			log.Debug().Int("row", i).Str("date", t.Cell(i, dateIdx)).Msg("dropping subscription row with unparseable date")
			continue
		}

		// Sign is preserved through cleaning; refunds and credits are
		// excluded only afterwards.
		amount := textutil.CleanNumber(t.Cell(i, amountIdx))
		if !amount.IsPositive() {
			log.Debug().Int("row", i).Str("amount", t.Cell(i, amountIdx)).Msg("dropping non-positive subscription amount")
			continue
		}

		rawType := model.CategoryNone
		if typeIdx >= 0 {
			if v := strings.TrimSpace(t.Cell(i, typeIdx)); v != "" {
				rawType = v
			}
		}

		desc := strings.TrimSpace(t.Cell(i, descIdx))
		out = append(out, model.SubscriptionRecord{
			Date:        date,
			Description: desc,
			Vendor:      textutil.VendorFromDescription(desc),
			Amount:      amount,
			Type:        category.Canonicalize(rawType),
			Year:        date.Year(),
			Month:       int(date.Month()),
			MonthName:   date.Format("Jan"),
			MonthYear:   time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return out, nil
}
