package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendview-dev/spendview/internal/model"
	"github.com/spendview-dev/spendview/internal/table"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestWriteUnified(t *testing.T) {
	rows := []model.UnifiedTransaction{
		{
			TransactionID: "T1",
			Type:          model.TypeCard,
			Time:          time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
			Amount:        dec("12.5"),
			Debit:         dec("12.5"),
			Counterparty:  "Christine Thomas",
			Category:      "Software",
			ExpenseStatus: "Approved",
			Month:         "MAR",
			Year:          "2024",
		},
		{TransactionID: "T2", Type: model.TypeDeposit, Amount: dec("100"), Credit: dec("100")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteUnified(&buf, rows))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	lines := strings.Split(strings.TrimRight(string(out[3:]), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "T1,CARD,2024-03-15 09:30:00,12.50,12.50,0.00,Christine Thomas,Software,Approved,MAR,2024", lines[1])
	assert.Equal(t, "T2,DEPOSIT,,100.00,0.00,100.00,,,,,", lines[2])
}

func TestToTable(t *testing.T) {
	rows := []model.UnifiedTransaction{
		{TransactionID: "T1", Type: model.TypeCard, Amount: dec("1"), Debit: dec("1")},
	}

	tbl := ToTable(rows)
	require.Equal(t, 1, tbl.Len())
	idx := tbl.ResolveIndex("Transaction Id")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "T1", tbl.Cell(0, idx))
	assert.Equal(t, "CARD", tbl.Cell(0, tbl.ResolveIndex("Type")))
}

func TestWriteTable_PadsRaggedRows(t *testing.T) {
	in := &table.Table{
		Columns: []string{"Transaction Id", "Amount"},
		Rows:    [][]string{{"T1"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, in))

	lines := strings.Split(strings.TrimRight(buf.String()[3:], "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "T1,", lines[1])
}

func TestWriteSubscriptions(t *testing.T) {
	recs := []model.SubscriptionRecord{
		{
			Date:        time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			Description: "Figma - design seats",
			Vendor:      "Figma",
			Amount:      dec("45"),
			Type:        "Tech",
			Year:        2024,
			Month:       5,
			MonthName:   "May",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSubscriptions(&buf, recs))

	lines := strings.Split(strings.TrimRight(buf.String()[3:], "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, SubscriptionHeader, lines[0])
	assert.Equal(t, "2024-05-02,Figma - design seats,Figma,45.00,Tech,2024,5,May", lines[1])
}
