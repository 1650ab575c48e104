// Package export writes unified tables and reconciliation results as
// delimited text for downstream consumers.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spendview-dev/spendview/internal/model"
	"github.com/spendview-dev/spendview/internal/table"
)

// Header is the CSV header for unified_transactions.csv.
const Header = "Transaction Id,Type,Time,Amount,Debit Net Amount,Credit Net Amount,User,Category,Expense status,Month,Year"

const (
	numFields  = 11
	timeFormat = "2006-01-02 15:04:05"
	colTxnID   = 0
	colType    = 1
	colTime    = 2
	colAmount  = 3
	colDebit   = 4
	colCredit  = 5
	colUser    = 6
	colCat     = 7
	colStatus  = 8
	colMonth   = 9
	colYear    = 10
)

// utf8BOM prefixes exported files so spreadsheet tools pick up UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteUnified writes the unified table as CSV with a UTF-8 BOM.
func WriteUnified(w io.Writer, rows []model.UnifiedTransaction) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, u := range rows {
		if err := cw.Write(marshalRow(u)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// marshalRow converts a UnifiedTransaction to a CSV row ([]string).
func marshalRow(u model.UnifiedTransaction) []string {
	row := make([]string, numFields)
	row[colTxnID] = u.TransactionID
	row[colType] = string(u.Type)
	if u.HasTime() {
		row[colTime] = u.Time.Format(timeFormat)
	}
	row[colAmount] = u.Amount.StringFixed(2)
	row[colDebit] = u.Debit.StringFixed(2)
	row[colCredit] = u.Credit.StringFixed(2)
	row[colUser] = u.Counterparty
	row[colCat] = u.Category
	row[colStatus] = u.ExpenseStatus
	row[colMonth] = u.Month
	row[colYear] = u.Year
	return row
}

// ToTable projects the unified rows into a raw table so they can feed
// the reconciliation engine alongside source tables.
func ToTable(rows []model.UnifiedTransaction) *table.Table {
	t := &table.Table{Columns: strings.Split(Header, ",")}
	for _, u := range rows {
		t.Rows = append(t.Rows, marshalRow(u))
	}
	return t
}

// WriteTable writes any raw table as CSV with a UTF-8 BOM, used for
// reconciliation output.
func WriteTable(w io.Writer, t *table.Table) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if len(t.Columns) > 0 {
		if err := cw.Write(t.Columns); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i := range t.Rows {
		row := make([]string, len(t.Columns))
		for j := range t.Columns {
			row[j] = t.Cell(i, j)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// SubscriptionHeader is the CSV header for subscriptions.csv.
const SubscriptionHeader = "Date,Description,Vendor,Amount,Type,Year,Month,Month Name"

// WriteSubscriptions writes subscription records as CSV with a UTF-8 BOM.
func WriteSubscriptions(w io.Writer, recs []model.SubscriptionRecord) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(SubscriptionHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range recs {
		row := []string{
			r.Date.Format("2006-01-02"),
			r.Description,
			r.Vendor,
			r.Amount.StringFixed(2),
			r.Type,
			fmt.Sprintf("%d", r.Year),
			fmt.Sprintf("%d", r.Month),
			r.MonthName,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
